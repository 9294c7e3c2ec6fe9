package model

import (
	"time"

	"gorm.io/datatypes"
)

// PostModel maps to the posts table. Images live in a JSON column
// rather than a join table: the URLs have no lifecycle of their own,
// only a display order owned by the post.
type PostModel struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Subject   string         `gorm:"type:text;not null" json:"subject"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Images    datatypes.JSON `gorm:"not null;default:'[]'" json:"images"`
}

func (PostModel) TableName() string {
	return "posts"
}
