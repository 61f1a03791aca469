package order

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrWrongOrderStatus           = errors.New("wrong order status")
	ErrInvalidLifecycleTransition = errors.New("invalid lifecycle transition")
	ErrInvalidDateOrdering        = errors.New("invalid date ordering")
)

// WrongOrderStatusError is returned when a mutating operation is gated by the
// order's current persisted status. It is always raised before any write, so
// storage is never touched on this path.
//
// Expected carries the single status that would have been required; it is
// Unknown when the operation has no single expected status (deletion, which
// allows anything except Delivered).
type WrongOrderStatusError struct {
	Expected Status
}

// NewWrongOrderStatusError creates a WrongOrderStatusError without an
// expected status, signaling only that the current status disallows
// the operation.
func NewWrongOrderStatusError() *WrongOrderStatusError {
	return &WrongOrderStatusError{}
}

// NewWrongOrderStatusErrorWithExpected creates a WrongOrderStatusError
// carrying the status the operation required.
func NewWrongOrderStatusErrorWithExpected(expected Status) *WrongOrderStatusError {
	return &WrongOrderStatusError{Expected: expected}
}

func (e *WrongOrderStatusError) Error() string {
	if e.Expected != Unknown {
		return fmt.Sprintf("wrong order status: expected %s", e.Expected)
	}
	return "wrong order status"
}

func (e *WrongOrderStatusError) Unwrap() error {
	return ErrWrongOrderStatus
}

// InvalidLifecycleTransitionError is returned when a lifecycle action is not
// available from the order's current status, such as delivering an order that
// has not started processing.
type InvalidLifecycleTransitionError struct {
	Action string
	Status Status
}

// NewInvalidLifecycleTransitionError creates an InvalidLifecycleTransitionError
// for the given action attempted in the given status.
func NewInvalidLifecycleTransitionError(action string, status Status) *InvalidLifecycleTransitionError {
	return &InvalidLifecycleTransitionError{Action: action, Status: status}
}

func (e *InvalidLifecycleTransitionError) Error() string {
	return fmt.Sprintf("invalid lifecycle transition: cannot %s order in status %s", e.Action, e.Status)
}

func (e *InvalidLifecycleTransitionError) Unwrap() error {
	return ErrInvalidLifecycleTransition
}

// InvalidDateOrderingError is returned when a lifecycle date would violate
// the ordering invariant (shipped date before order date). It carries the
// offending value and the field name.
type InvalidDateOrderingError struct {
	ParamName string
	Value     time.Time
}

// NewInvalidDateOrderingError creates an InvalidDateOrderingError for the
// named date field with the offending value.
func NewInvalidDateOrderingError(paramName string, value time.Time) *InvalidDateOrderingError {
	return &InvalidDateOrderingError{ParamName: paramName, Value: value}
}

func (e *InvalidDateOrderingError) Error() string {
	return fmt.Sprintf("invalid date ordering: %s %s precedes order date",
		e.ParamName, e.Value.Format("2006-01-02"))
}

func (e *InvalidDateOrderingError) Unwrap() error {
	return ErrInvalidDateOrdering
}
