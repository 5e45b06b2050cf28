package models

import (
	"time"

	"github.com/stephen-1-2/Anonymous-Wall/pkg/utils"
	"gorm.io/gorm"
)

// Like marks that one derived identity liked one message. The composite
// unique index is what makes the toggle operation race-safe: concurrent
// inserts for the same pair resolve by letting exactly one succeed.
// Likes are hard-deleted on un-like and on message delete so the unique
// index never blocks a re-like.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_message_user_like" json:"messageId"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_message_user_like" json:"userId"`
	CreatedAt time.Time `json:"createTime"`
}

func (Like) TableName() string {
	return "likes"
}

// Comment is a reply on a message. Comments are soft-deleted only, so the
// denormalized comment counter stays recomputable from live rows.
type Comment struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	MessageID string         `gorm:"type:varchar(64);not null;index" json:"messageId"`
	UserID    string         `gorm:"type:varchar(64);not null" json:"-"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"createTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = utils.GenerateCommentID()
	}
	return
}
