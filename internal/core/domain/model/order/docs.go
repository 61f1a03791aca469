// Package order provides the domain model for order management. It implements
// the Order aggregate root with lifecycle management and derived status.
//
// The package includes:
//   - Order: the aggregate root holding the persisted order fields
//   - Status: the lifecycle state, derived from the order and shipped dates
//   - ShipmentInfo: the ship-to address value object
//   - OrderDetailedInfo, OrderHistoryElement, OrderDetailElement: read models
//     for the reporting operations
//
// Key business rules:
//   - Status is New without an order date, Processing with only an order
//     date, Delivered with both dates; it is never set directly
//   - Deliver requires a started order and a shipped date not earlier than
//     the order date
//   - Only orders in New status may be edited; Delivered orders may never
//     be deleted (enforced by the repository against persisted state)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
