package models

import (
	"gorm.io/datatypes"
)

// Post types accepted by the store's check constraint.
const (
	PostTypeEvent   = "event"
	PostTypeRequest = "request"
	PostTypeAlert   = "alert"
)

type Post struct {
	PostID      uint           `gorm:"primaryKey" json:"postId"`
	Title       string         `gorm:"not null" json:"title"`
	Type        string         `gorm:"not null;check:type IN ('event','request','alert')" json:"type"`
	Content     string         `gorm:"not null" json:"content"`
	Description string         `json:"description,omitempty"`
	Date        datatypes.Date `gorm:"not null" json:"date"`
	Place       string         `json:"place,omitempty"`
	UserID      uint           `gorm:"not null;index" json:"userId"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

var PostRequiredFields = []string{"title", "type", "content", "userId"}

var PostColumns = map[string]string{
	"title":       "title",
	"type":        "type",
	"content":     "content",
	"description": "description",
	"date":        "date",
	"place":       "place",
	"userId":      "user_id",
}
