// Package order provides the Order aggregate placed against an order table, the
// OrderLineItem it owns, and the Status state machine that drives it.
//
// The package includes:
//   - Order: the aggregate root holding the table reference, line items, status and order time
//   - OrderLineItem: a menu snapshot (id, name, price) with a quantity
//   - Status: COOKING, MEAL or COMPLETION; COMPLETION is terminal
//
// Key business rules:
//   - An order has at least one line item and is placed on a non-empty table
//   - A new order starts in COOKING and raises an order placed event
//   - A completed order never changes status again
//   - Line items can only be added while the order is still COOKING
//
// Line items keep the menu's name and price as they were when the order was taken,
// so later menu changes do not rewrite order history.
package order
