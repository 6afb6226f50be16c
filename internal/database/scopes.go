package database

import (
	"gorm.io/gorm"

	"simplechat/internal/models"
)

// Visible restricts a post or reply query to rows that have not been
// soft-deleted.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.StatusActive)
}
