package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simplechat/internal/models"
	"simplechat/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	Content  string
	AuthorID uint64
}

// CreatePost inserts a new active post.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Content:  input.Content,
		AuthorID: input.AuthorID,
		Status:   models.StatusActive,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// SoftDelete marks a post deleted and returns the updated row. The row is
// never physically removed and stays retrievable by ID. No ownership check
// is performed here; the caller-supplied identity is trusted.
func (s *PostService) SoftDelete(id uint64) (*models.Post, error) {
	post, err := s.postRepo.MarkDeleted(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return post, nil
}

// ListFeed returns all visible posts, newest first, optionally reordered by
// the given feed sort mode.
func (s *PostService) ListFeed(mode FeedSortMode) ([]models.Post, error) {
	posts, err := s.postRepo.ListVisible()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	SortFeed(posts, mode)
	return posts, nil
}
