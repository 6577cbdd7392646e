package models

import "gorm.io/gorm"

// EntityStatus is the soft-delete state of catalog and cart rows. Rows are
// flipped to StatusDeleted instead of being removed so historical orders can
// still join against them.
type EntityStatus string

const (
	StatusActive  EntityStatus = "active"
	StatusDeleted EntityStatus = "deleted"
)

// Active is a GORM scope that excludes soft-deleted rows from a query.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", StatusActive)
}
