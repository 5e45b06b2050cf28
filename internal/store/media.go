package store

import (
	"strings"

	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
)

// MIME allow-lists. Anything else is rejected before a message row exists.
var allowedMediaTypes = map[string]string{
	"image/jpeg": models.MediaKindImage,
	"image/png":  models.MediaKindImage,
	"image/gif":  models.MediaKindImage,
	"image/webp": models.MediaKindImage,
	"video/mp4":  models.MediaKindVideo,
	"video/webm": models.MediaKindVideo,
}

// ValidateMedia checks a declared MIME type and payload size against the
// allow-list and ceiling, returning the coarse media kind. Called before
// any bytes are read into memory so oversized or unsupported uploads never
// produce a partial message.
func ValidateMedia(mimeType string, size, maxBytes int64) (string, error) {
	kind, ok := allowedMediaTypes[strings.ToLower(strings.TrimSpace(mimeType))]
	if !ok {
		return "", ErrUnsupportedMedia
	}
	if size > maxBytes {
		return "", ErrTooLarge
	}
	return kind, nil
}

// IsAllowedImage reports whether a MIME type is on the image allow-list
// (backgrounds accept images only).
func IsAllowedImage(mimeType string) bool {
	return allowedMediaTypes[strings.ToLower(strings.TrimSpace(mimeType))] == models.MediaKindImage
}

// FetchMedia returns the inline media payload for a live message. Absent,
// soft-deleted, and media-less messages all read as not found.
func (s *Store) FetchMedia(messageID string) (*Media, error) {
	var msg models.Message
	err := s.db.
		Select("id", "media_data", "media_type", "media_file_name", "media_mime_type").
		First(&msg, "id = ?", messageID).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !msg.HasMedia() {
		return nil, ErrNotFound
	}

	return &Media{
		Data:     msg.MediaData,
		Kind:     msg.MediaType,
		MimeType: msg.MediaMimeType,
		FileName: msg.MediaFileName,
	}, nil
}
