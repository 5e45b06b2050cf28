package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateMessageID returns an opaque, caller-unguessable message id.
// Time prefix keeps ids roughly sortable; the random suffix makes
// collisions negligible even for same-millisecond submissions.
func GenerateMessageID() string {
	return fmt.Sprintf("msg_%d_%s", time.Now().UnixMilli(), randomHex(4))
}

// GenerateCommentID returns an opaque unique comment id.
func GenerateCommentID() string {
	return "comment_" + uuid.New().String()
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to uuid
		return uuid.New().String()[:2*n]
	}
	return hex.EncodeToString(b)
}
