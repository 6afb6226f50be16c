package repository

import (
	"gorm.io/gorm"

	"simplechat/internal/models"
)

// GormLikeRepository is a GORM implementation of LikeRepository
type GormLikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &GormLikeRepository{db: db}
}

// Create inserts a like row. The composite primary key makes the store
// reject a duplicate (user, post) pair with gorm.ErrDuplicatedKey.
func (r *GormLikeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Find finds the like for a (user, post) pair
func (r *GormLikeRepository) Find(userID, postID uint64) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// DeleteByUserAndPost removes all likes for a (user, post) pair. Zero rows
// affected is still success, which makes unlike idempotent.
func (r *GormLikeRepository) DeleteByUserAndPost(userID, postID uint64) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
}
