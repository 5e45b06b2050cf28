package store

import (
	"strings"
	"time"

	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"gorm.io/gorm"
)

// Media is an upload already validated against the allow-list and size
// ceiling, ready to be attached to a new message.
type Media struct {
	Data     []byte
	Kind     string // models.MediaKindImage | models.MediaKindVideo
	MimeType string
	FileName string
}

// MessageView is a message annotated with the viewer's like state. The raw
// media bytes never travel with list responses.
type MessageView struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	MediaType     string    `json:"mediaType"`
	MediaFileName string    `json:"mediaFileName"`
	MediaMimeType string    `json:"mediaMimeType"`
	CreateTime    time.Time `json:"createTime"`
	LikeCount     int64     `json:"likeCount"`
	CommentCount  int64     `json:"commentCount"`
	IsLiked       bool      `json:"isLiked"`
}

// CreateMessage persists a new wall entry with zero counters. A message
// must carry text, media, or both; media is written inline in the same
// insert, so a rejected upload can never leave a partial row behind.
func (s *Store) CreateMessage(content string, media *Media) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" && media == nil {
		return nil, ErrValidation
	}

	msg := models.Message{Content: content}
	if media != nil {
		msg.MediaData = media.Data
		msg.MediaType = media.Kind
		msg.MediaFileName = media.FileName
		msg.MediaMimeType = media.MimeType
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns live messages newest first, each annotated with
// whether the viewer has liked it. The flag is computed per call from the
// likes table, never stored on the message.
func (s *Store) ListMessages(viewerID string) ([]MessageView, error) {
	var messages []models.Message
	err := s.db.
		Select("id", "content", "media_type", "media_file_name", "media_mime_type", "created_at", "like_count", "comment_count").
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	liked := make(map[string]bool)
	if viewerID != "" && len(messages) > 0 {
		ids := make([]string, len(messages))
		for i, m := range messages {
			ids[i] = m.ID
		}
		var likes []models.Like
		if err := s.db.Where("user_id = ? AND message_id IN ?", viewerID, ids).Find(&likes).Error; err != nil {
			return nil, err
		}
		for _, l := range likes {
			liked[l.MessageID] = true
		}
	}

	views := make([]MessageView, len(messages))
	for i, m := range messages {
		views[i] = MessageView{
			ID:            m.ID,
			Content:       m.Content,
			MediaType:     m.MediaType,
			MediaFileName: m.MediaFileName,
			MediaMimeType: m.MediaMimeType,
			CreateTime:    m.CreatedAt,
			LikeCount:     m.LikeCount,
			CommentCount:  m.CommentCount,
			IsLiked:       liked[m.ID],
		}
	}
	return views, nil
}

// DeleteMessage soft-deletes a message and cascades to its children in the
// same transaction: likes are removed outright (keeps the unique index
// clean), comments are soft-deleted alongside their parent. Absent or
// already-deleted messages report ErrNotFound rather than silent success.
func (s *Store) DeleteMessage(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.Select("id").First(&msg, "id = ?", id).Error; err != nil {
			return notFoundOr(err)
		}

		if err := tx.Delete(&msg).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("message_id = ?", id).Delete(&models.Comment{}).Error
	})
}

// Recount repairs counter drift by recomputing both counters from live
// child rows. The relative adjustments in toggle/comment operations must
// stay equivalent to this.
func (s *Store) Recount(messageID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.Select("id").First(&msg, "id = ?", messageID).Error; err != nil {
			return notFoundOr(err)
		}

		var likeCount, commentCount int64
		if err := tx.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&likeCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("message_id = ?", messageID).Count(&commentCount).Error; err != nil {
			return err
		}

		return tx.Model(&models.Message{}).Where("id = ?", messageID).Updates(map[string]interface{}{
			"like_count":    likeCount,
			"comment_count": commentCount,
		}).Error
	})
}
