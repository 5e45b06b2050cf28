package models

import (
	"time"

	"github.com/stephen-1-2/Anonymous-Wall/pkg/utils"
	"gorm.io/gorm"
)

// Media kinds stored on a message. Derived from the declared MIME type at
// upload time, used by the frontend to pick an <img> or <video> tag.
const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

// Message is a wall entry. Media is stored inline on the row (LONGBLOB /
// BYTEA) and is immutable once attached. LikeCount and CommentCount are
// denormalized from the likes/comments tables and only ever adjusted with
// relative SQL expressions.
type Message struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Content   string         `gorm:"type:text" json:"content"`
	CreatedAt time.Time      `json:"createTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	MediaData     []byte `gorm:"type:bytes" json:"-"`
	MediaType     string `gorm:"type:varchar(20)" json:"mediaType"` // image | video | ""
	MediaFileName string `gorm:"type:varchar(255)" json:"mediaFileName"`
	MediaMimeType string `gorm:"type:varchar(100)" json:"mediaMimeType"`

	LikeCount    int64 `gorm:"not null;default:0" json:"likeCount"`
	CommentCount int64 `gorm:"not null;default:0" json:"commentCount"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = utils.GenerateMessageID()
	}
	return
}

// HasMedia reports whether a media payload was attached at creation.
func (m *Message) HasMedia() bool {
	return len(m.MediaData) > 0
}
