package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simplechat/internal/models"
	"simplechat/internal/repository"
)

var ErrAlreadyLiked = errors.New("post already liked")

// LikeService handles like business logic
type LikeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
	}
}

// Like records a like for a (user, post) pair. A second like of the same
// pair fails with ErrAlreadyLiked, whether seen by the pre-check or by the
// store's uniqueness constraint when two requests race.
func (s *LikeService) Like(userID, postID uint64) (*models.Like, error) {
	if _, err := s.likeRepo.Find(userID, postID); err == nil {
		return nil, ErrAlreadyLiked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	like := &models.Like{
		UserID: userID,
		PostID: postID,
	}

	if err := s.likeRepo.Create(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return like, nil
}

// Unlike removes the like for a (user, post) pair. Removing a pair that was
// never liked, or was already unliked, still succeeds.
func (s *LikeService) Unlike(userID, postID uint64) error {
	if err := s.likeRepo.DeleteByUserAndPost(userID, postID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
