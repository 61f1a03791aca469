package order

import (
	"fmt"
	"time"

	"northwind/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Status is never assigned directly. It is a pure function of the two
// lifecycle dates and is recomputed after every date mutation and after
// every load from storage:
//
//	New ── StartProcessing(orderDate) ──> Processing ── Deliver(shippedDate) ──> Delivered
//
// No transition reverts a status: the order date and shipped date are only
// ever set, never cleared.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: the order has no order date yet.
	// Only orders in this status may be edited.
	New

	// Processing indicates the order date is set but the order has not
	// shipped yet.
	Processing

	// Delivered indicates both the order date and the shipped date are set.
	// Delivered orders may never be deleted.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Processing: "Processing",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		Processing: "Processing",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Processing, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DeriveStatus computes the order status from the two lifecycle dates.
//
// The mapping is total:
//   - no order date            -> New
//   - order date, no shipped   -> Processing
//   - both dates present       -> Delivered
//
// Status is derived, never stored, so persisted dates and a separately
// persisted status value cannot diverge.
func DeriveStatus(orderDate, shippedDate *time.Time) Status {
	switch {
	case orderDate == nil:
		return New
	case shippedDate == nil:
		return Processing
	default:
		return Delivered
	}
}
