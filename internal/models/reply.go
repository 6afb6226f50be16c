package models

import "time"

// Reply follows the same soft-delete rule as Post.
type Reply struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	PostID    uint64    `gorm:"not null;index" json:"postId"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'active';index" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Post   Post `gorm:"foreignKey:PostID" json:"-"`
}

// Deleted reports whether the reply has been soft-deleted.
func (r *Reply) Deleted() bool {
	return r.Status == StatusDeleted
}
