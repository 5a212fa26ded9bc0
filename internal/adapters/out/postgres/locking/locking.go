// Package locking loads rows for update inside the caller's transaction.
package locking

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dialectPostgres = "postgres"

// ForUpdate adds SELECT ... FOR UPDATE on PostgreSQL, so a row read by one
// transaction cannot change before that transaction ends. Other dialects are
// returned unchanged: SQLite has no row locks and its single connection already
// serializes transactions.
func ForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() != dialectPostgres {
		return db
	}
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}
