package models

import (
	"gorm.io/datatypes"
)

type Comment struct {
	CommentID uint           `gorm:"primaryKey" json:"commentId"`
	Content   string         `gorm:"not null" json:"content"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	PostID    uint           `gorm:"not null;index" json:"postId"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

var CommentRequiredFields = []string{"content", "date", "postId", "userId"}

var CommentColumns = map[string]string{
	"content": "content",
	"date":    "date",
	"userId":  "user_id",
	"postId":  "post_id",
}
