package repository

import (
	"gorm.io/gorm"

	"simplechat/internal/database"
	"simplechat/internal/models"
)

// GormReplyRepository is a GORM implementation of ReplyRepository
type GormReplyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new ReplyRepository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &GormReplyRepository{db: db}
}

// Create creates a new reply
func (r *GormReplyRepository) Create(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// ListVisibleByPost retrieves non-deleted replies for a post, oldest first
func (r *GormReplyRepository) ListVisibleByPost(postID uint64) ([]models.Reply, error) {
	var replies []models.Reply
	err := r.db.Scopes(database.Visible).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

// SearchVisible finds non-deleted replies whose content contains the query,
// case-insensitive, newest first, capped at limit
func (r *GormReplyRepository) SearchVisible(query string, limit int) ([]models.Reply, error) {
	var replies []models.Reply
	err := r.db.Scopes(database.Visible).
		Where("LOWER(content) LIKE ? ESCAPE '!'", containsPattern(query)).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}
