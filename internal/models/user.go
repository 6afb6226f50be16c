package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Posts   []Post  `gorm:"foreignKey:AuthorID" json:"-"`
	Replies []Reply `gorm:"foreignKey:AuthorID" json:"-"`
	Likes   []Like  `gorm:"foreignKey:UserID" json:"-"`
}
