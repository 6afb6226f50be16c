package repository

import (
	"gorm.io/gorm"

	"simplechat/internal/database"
	"simplechat/internal/models"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID regardless of its status. Soft-deleted posts
// stay retrievable here; only listings and search filter them out.
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListVisible retrieves all non-deleted posts, newest first. Likes and
// replies are preloaded in full; replies carry their authors.
func (r *GormPostRepository) ListVisible() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Scopes(database.Visible).
		Preload("Author").
		Preload("Likes").
		Preload("Replies").
		Preload("Replies.Author").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// MarkDeleted soft-deletes a post and returns the updated row
func (r *GormPostRepository) MarkDeleted(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}

	post.Status = models.StatusDeleted
	if err := r.db.Save(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// SearchVisible finds non-deleted posts whose content contains the query,
// case-insensitive, newest first, capped at limit
func (r *GormPostRepository) SearchVisible(query string, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Scopes(database.Visible).
		Where("LOWER(content) LIKE ? ESCAPE '!'", containsPattern(query)).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
