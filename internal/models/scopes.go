package models

import "gorm.io/gorm"

// Active filters to rows whose is_active flag is set. Used by the public
// read endpoints.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// Published filters blogs to published posts.
func Published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

// BySortOrder applies the display ordering shared by the portfolio listings.
func BySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}
