package dto

import (
	"time"

	"simplechat/internal/models"
)

// Search result types
const (
	SearchResultTypePost  = "post"
	SearchResultTypeReply = "reply"
)

// SearchResultDTO is one match in the search response. User is the author's
// username; PostID is set only for reply matches.
type SearchResultDTO struct {
	Type      string    `json:"type"`
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	PostID    uint64    `json:"postId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SearchResponse wraps the merged result sequence.
type SearchResponse struct {
	Results []SearchResultDTO `json:"results"`
}

// ToSearchResults merges matching posts and replies into a single sequence:
// all posts first, then all replies. Ordering within each type is whatever
// the store returned.
func ToSearchResults(posts []models.Post, replies []models.Reply) []SearchResultDTO {
	results := make([]SearchResultDTO, 0, len(posts)+len(replies))

	for _, post := range posts {
		results = append(results, SearchResultDTO{
			Type:      SearchResultTypePost,
			ID:        post.ID,
			Content:   post.Content,
			User:      post.Author.Username,
			CreatedAt: post.CreatedAt,
		})
	}

	for _, reply := range replies {
		results = append(results, SearchResultDTO{
			Type:      SearchResultTypeReply,
			ID:        reply.ID,
			Content:   reply.Content,
			User:      reply.Author.Username,
			PostID:    reply.PostID,
			CreatedAt: reply.CreatedAt,
		})
	}

	return results
}
