package services

import (
	"fmt"

	"simplechat/internal/models"
	"simplechat/internal/repository"
)

// ReplyService handles reply business logic
type ReplyService struct {
	replyRepo repository.ReplyRepository
}

// NewReplyService creates a new ReplyService
func NewReplyService(replyRepo repository.ReplyRepository) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
	}
}

// CreateReplyInput represents input for creating a reply
type CreateReplyInput struct {
	Content  string
	AuthorID uint64
	PostID   uint64
}

// CreateReply inserts a new active reply under a post.
func (s *ReplyService) CreateReply(input CreateReplyInput) (*models.Reply, error) {
	reply := &models.Reply{
		Content:  input.Content,
		AuthorID: input.AuthorID,
		PostID:   input.PostID,
		Status:   models.StatusActive,
	}

	if err := s.replyRepo.Create(reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	return reply, nil
}

// ListByPost returns the visible replies for a post, oldest first.
func (s *ReplyService) ListByPost(postID uint64) ([]models.Reply, error) {
	replies, err := s.replyRepo.ListVisibleByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return replies, nil
}
