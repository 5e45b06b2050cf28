package main

import (
	"fmt"

	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/database"
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
)

// Prints the live wall contents and flags counter drift: for every message
// the stored counters are compared against a fresh count of child rows.
func main() {
	config.LoadConfig()
	db := database.Connect()

	var messages []models.Message
	db.Select("id", "content", "media_type", "media_file_name", "created_at", "like_count", "comment_count").
		Order("created_at DESC").
		Find(&messages)

	fmt.Printf("Messages: %d\n\n", len(messages))

	drift := 0
	for i, m := range messages {
		var likeCount, commentCount int64
		db.Model(&models.Like{}).Where("message_id = ?", m.ID).Count(&likeCount)
		db.Model(&models.Comment{}).Where("message_id = ?", m.ID).Count(&commentCount)

		fmt.Printf("%d. %s (%s)\n", i+1, m.ID, m.CreatedAt.Format("2006-01-02 15:04:05"))
		if m.Content != "" {
			fmt.Printf("   content: %s\n", m.Content)
		}
		if m.MediaType != "" {
			fmt.Printf("   media:   %s (%s)\n", m.MediaFileName, m.MediaType)
		}
		fmt.Printf("   likes:    %d (live rows: %d)\n", m.LikeCount, likeCount)
		fmt.Printf("   comments: %d (live rows: %d)\n", m.CommentCount, commentCount)

		if m.LikeCount != likeCount || m.CommentCount != commentCount {
			fmt.Println("   !! counter drift detected, run cmd/recount")
			drift++
		}
	}

	fmt.Printf("\n%d message(s) with counter drift\n", drift)
}
