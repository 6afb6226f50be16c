package models

import "time"

type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// Post is never physically removed; deletion flips Status to deleted and
// listings/search filter on it.
type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'active';index" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	// Relations
	Author  User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Likes   []Like  `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Replies []Reply `gorm:"foreignKey:PostID" json:"replies,omitempty"`
}

// Deleted reports whether the post has been soft-deleted.
func (p *Post) Deleted() bool {
	return p.Status == StatusDeleted
}
