package store

import (
	"strings"
	"time"

	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"gorm.io/gorm"
)

// CommentView is a comment annotated with whether the viewer wrote it. The
// author identity itself never leaves the store.
type CommentView struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"createTime"`
	IsMine     bool      `json:"isMine"`
}

// AddComment persists a comment and bumps the owning message's counter in
// one transaction: the comment and its count reflection either both land
// or neither does.
func (s *Store) AddComment(messageID, content, userID string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.Select("id").First(&msg, "id = ?", messageID).Error; err != nil {
			return notFoundOr(err)
		}

		comment = models.Comment{
			MessageID: messageID,
			UserID:    userID,
			Content:   content,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return adjustCounter(tx, messageID, "comment_count", +1)
	})
	if err != nil {
		return nil, err
	}

	return &CommentView{
		ID:         comment.ID,
		Content:    comment.Content,
		CreateTime: comment.CreatedAt,
		IsMine:     true,
	}, nil
}

// ListComments returns live comments on a message, newest first.
func (s *Store) ListComments(messageID, viewerID string) ([]CommentView, error) {
	var msg models.Message
	if err := s.db.Select("id").First(&msg, "id = ?", messageID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var comments []models.Comment
	err := s.db.
		Where("message_id = ?", messageID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = CommentView{
			ID:         c.ID,
			Content:    c.Content,
			CreateTime: c.CreatedAt,
			IsMine:     c.UserID == viewerID,
		}
	}
	return views, nil
}

// DeleteComment soft-deletes a comment its author no longer wants, and
// floors the owning message's counter down by one in the same transaction.
// Only the author may delete; there is no admin override for comments.
func (s *Store) DeleteComment(commentID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			return notFoundOr(err)
		}

		if comment.UserID != userID {
			return ErrForbidden
		}

		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return adjustCounter(tx, comment.MessageID, "comment_count", -1)
	})
}
