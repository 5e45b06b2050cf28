package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/database"
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
)

// Exports live messages (media blobs written out as files), likes, and
// comments into a timestamped directory under ./exports.
func main() {
	config.LoadConfig()
	db := database.Connect()

	stamp := time.Now().Format("2006-01-02_150405")
	exportDir := filepath.Join("exports", stamp)
	mediaDir := filepath.Join(exportDir, "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		log.Fatalf("Failed to create export dir: %v", err)
	}

	var messages []models.Message
	if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
		log.Fatalf("Failed to read messages: %v", err)
	}

	type exportedMessage struct {
		ID            string    `json:"id"`
		Content       string    `json:"content"`
		MediaType     string    `json:"mediaType"`
		MediaFileName string    `json:"mediaFileName"`
		MediaMimeType string    `json:"mediaMimeType"`
		CreateTime    time.Time `json:"createTime"`
		LikeCount     int64     `json:"likeCount"`
		CommentCount  int64     `json:"commentCount"`
		MediaFile     string    `json:"mediaFile,omitempty"`
	}

	out := make([]exportedMessage, 0, len(messages))
	mediaCount := 0
	for _, m := range messages {
		e := exportedMessage{
			ID:            m.ID,
			Content:       m.Content,
			MediaType:     m.MediaType,
			MediaFileName: m.MediaFileName,
			MediaMimeType: m.MediaMimeType,
			CreateTime:    m.CreatedAt,
			LikeCount:     m.LikeCount,
			CommentCount:  m.CommentCount,
		}
		if m.HasMedia() {
			ext := filepath.Ext(m.MediaFileName)
			if ext == "" {
				ext = ".bin"
			}
			name := m.ID + ext
			if err := os.WriteFile(filepath.Join(mediaDir, name), m.MediaData, 0o644); err != nil {
				log.Fatalf("Failed to write media for %s: %v", m.ID, err)
			}
			e.MediaFile = name
			mediaCount++
		}
		out = append(out, e)
	}

	writeJSON(filepath.Join(exportDir, "messages.json"), out)

	var likes []models.Like
	if err := db.Find(&likes).Error; err != nil {
		log.Fatalf("Failed to read likes: %v", err)
	}
	writeJSON(filepath.Join(exportDir, "likes.json"), likes)

	var comments []models.Comment
	if err := db.Find(&comments).Error; err != nil {
		log.Fatalf("Failed to read comments: %v", err)
	}
	writeJSON(filepath.Join(exportDir, "comments.json"), comments)

	fmt.Printf("Exported %d messages (%d media files), %d likes, %d comments to %s\n",
		len(out), mediaCount, len(likes), len(comments), exportDir)
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
}
