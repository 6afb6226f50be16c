package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database.
// The existence check queries pg_indexes, so this only runs on postgres;
// on other drivers the model index tags created by AutoMigrate suffice.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Feed query: visible posts ordered newest-first
		{"posts", "idx_posts_status_created_at", "status, created_at"},

		// Reply listing: visible replies for a post, oldest-first
		{"replies", "idx_replies_post_id_created_at", "post_id, created_at"},
		{"replies", "idx_replies_status", "status"},

		// Unlike deletes by pair; the composite PK covers (user_id, post_id)
		{"likes", "idx_likes_post_id", "post_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
