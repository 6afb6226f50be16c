package models

import "time"

// Like is a join row keyed by (user, post). The composite primary key is the
// uniqueness constraint that rejects duplicate likes, including racing ones.
// Unlike Post and Reply, likes are hard-deleted on unlike.
type Like struct {
	UserID    uint64    `gorm:"primarykey" json:"userId"`
	PostID    uint64    `gorm:"primarykey" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
