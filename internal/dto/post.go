package dto

import (
	"time"

	"simplechat/internal/models"
)

// PostDTO represents a post on its own, as returned from create and delete.
type PostDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint64    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Deleted   bool      `json:"deleted"`
}

// FeedPostDTO represents a post in the feed listing, with its author, every
// like row, and every reply row (replies carry their own author).
type FeedPostDTO struct {
	ID        uint64     `json:"id"`
	Content   string     `json:"content"`
	AuthorID  uint64     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	Deleted   bool       `json:"deleted"`
	Author    UserDTO    `json:"author"`
	Likes     []LikeDTO  `json:"likes"`
	Replies   []ReplyDTO `json:"replies"`
}

// LikeDTO represents a like row in API responses
type LikeDTO struct {
	UserID    uint64    `json:"userId"`
	PostID    uint64    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		Deleted:   post.Deleted(),
	}
}

// ToLikeDTO converts a Like model to LikeDTO
func ToLikeDTO(like models.Like) LikeDTO {
	return LikeDTO{
		UserID:    like.UserID,
		PostID:    like.PostID,
		CreatedAt: like.CreatedAt,
	}
}

// ToFeedPostDTO converts a Post model with preloaded relations to FeedPostDTO.
// Likes and Replies always serialize as arrays, never null.
func ToFeedPostDTO(post models.Post) FeedPostDTO {
	likes := make([]LikeDTO, len(post.Likes))
	for i, like := range post.Likes {
		likes[i] = ToLikeDTO(like)
	}

	replies := make([]ReplyDTO, len(post.Replies))
	for i, reply := range post.Replies {
		replies[i] = ToReplyDTO(reply)
	}

	return FeedPostDTO{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		Deleted:   post.Deleted(),
		Author:    ToUserDTO(post.Author),
		Likes:     likes,
		Replies:   replies,
	}
}

// ToFeedPostDTOs converts a slice of posts to feed DTOs
func ToFeedPostDTOs(posts []models.Post) []FeedPostDTO {
	items := make([]FeedPostDTO, len(posts))
	for i, post := range posts {
		items[i] = ToFeedPostDTO(post)
	}
	return items
}
