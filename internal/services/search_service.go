package services

import (
	"fmt"
	"strings"

	"simplechat/internal/constants"
	"simplechat/internal/models"
	"simplechat/internal/repository"
)

// SearchService matches post and reply content by case-insensitive
// substring containment, excluding soft-deleted rows.
type SearchService struct {
	postRepo  repository.PostRepository
	replyRepo repository.ReplyRepository
}

// NewSearchService creates a new SearchService
func NewSearchService(postRepo repository.PostRepository, replyRepo repository.ReplyRepository) *SearchService {
	return &SearchService{
		postRepo:  postRepo,
		replyRepo: replyRepo,
	}
}

// Search returns matching posts and replies, each capped at the search
// result limit and ordered newest first within its type. A blank query
// matches nothing and is not an error.
func (s *SearchService) Search(query string) ([]models.Post, []models.Reply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil, nil
	}

	posts, err := s.postRepo.SearchVisible(query, constants.SearchResultLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search posts: %w", err)
	}

	replies, err := s.replyRepo.SearchVisible(query, constants.SearchResultLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search replies: %w", err)
	}

	return posts, replies, nil
}
