package database

import "gorm.io/gorm"

// ActiveOnly restricts a query to rows that have not been soft-deleted.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// NewestFirst orders rows by creation time, most recent first.
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// ByNameAsc orders rows alphabetically by name.
func ByNameAsc(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// ByProjectDateDesc orders projects by their project date, newest first.
func ByProjectDateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("project_date DESC")
}
