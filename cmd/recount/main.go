package main

import (
	"fmt"
	"log"
	"os"

	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/database"
	"github.com/stephen-1-2/Anonymous-Wall/internal/models"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
)

// Repairs counter drift by recomputing like/comment counters from live
// child rows. With no arguments every live message is recounted; message
// ids can be passed to limit the repair.
func main() {
	config.LoadConfig()
	db := database.Connect()
	st := store.New(db)

	ids := os.Args[1:]
	if len(ids) == 0 {
		var messages []models.Message
		if err := db.Select("id").Find(&messages).Error; err != nil {
			log.Fatalf("Failed to list messages: %v", err)
		}
		for _, m := range messages {
			ids = append(ids, m.ID)
		}
	}

	repaired := 0
	for _, id := range ids {
		if err := st.Recount(id); err != nil {
			log.Printf("recount %s: %v", id, err)
			continue
		}
		repaired++
	}

	fmt.Printf("Recounted %d message(s)\n", repaired)
}
