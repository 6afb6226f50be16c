package repository

import "simplechat/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID regardless of its status
	FindByID(id uint64) (*models.Post, error)

	// ListVisible retrieves all non-deleted posts with author, likes, and
	// replies (with their authors) preloaded, newest first
	ListVisible() ([]models.Post, error)

	// MarkDeleted soft-deletes a post and returns the updated row
	MarkDeleted(id uint64) (*models.Post, error)

	// SearchVisible finds non-deleted posts whose content contains the query
	// (case-insensitive), newest first, capped at limit
	SearchVisible(query string, limit int) ([]models.Post, error)
}

// ReplyRepository defines the interface for reply data access
type ReplyRepository interface {
	// Create creates a new reply
	Create(reply *models.Reply) error

	// ListVisibleByPost retrieves non-deleted replies for a post with their
	// authors preloaded, oldest first
	ListVisibleByPost(postID uint64) ([]models.Reply, error)

	// SearchVisible finds non-deleted replies whose content contains the
	// query (case-insensitive), newest first, capped at limit
	SearchVisible(query string, limit int) ([]models.Reply, error)
}

// LikeRepository defines the interface for like data access
type LikeRepository interface {
	// Create inserts a like row; the store rejects duplicates of the
	// (user, post) pair
	Create(like *models.Like) error

	// Find finds the like for a (user, post) pair
	Find(userID, postID uint64) (*models.Like, error)

	// DeleteByUserAndPost removes all likes for a (user, post) pair.
	// Deleting a pair with no rows is not an error.
	DeleteByUserAndPost(userID, postID uint64) error
}
