package dto

import (
	"time"

	"simplechat/internal/models"
)

// ReplyDTO represents a reply in API responses. Author is included when the
// relation was preloaded.
type ReplyDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint64    `json:"authorId"`
	PostID    uint64    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	Deleted   bool      `json:"deleted"`
	Author    *UserDTO  `json:"author,omitempty"`
}

// ToReplyDTO converts a Reply model to ReplyDTO
func ToReplyDTO(reply models.Reply) ReplyDTO {
	dto := ReplyDTO{
		ID:        reply.ID,
		Content:   reply.Content,
		AuthorID:  reply.AuthorID,
		PostID:    reply.PostID,
		CreatedAt: reply.CreatedAt,
		Deleted:   reply.Deleted(),
	}

	if reply.Author.ID != 0 {
		author := ToUserDTO(reply.Author)
		dto.Author = &author
	}

	return dto
}

// ToReplyDTOs converts a slice of replies to DTOs
func ToReplyDTOs(replies []models.Reply) []ReplyDTO {
	items := make([]ReplyDTO, len(replies))
	for i, reply := range replies {
		items[i] = ToReplyDTO(reply)
	}
	return items
}
