// Package services holds domain services: rules that span more than one
// aggregate and therefore belong to none of them.
//
// The package includes:
//   - TableReleaser: empties a table only when none of its orders is in progress
//   - TableUngrouper: dissolves a table group only when its tables have no orders in progress
//
// Services are stateless. They operate on aggregates that were already loaded and
// never touch persistence; the application layer loads the inputs and saves the results.
package services
