package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/database"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/logger"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/utils"
)

// submitLimit caps message submissions per identity per minute when Redis
// is configured. The in-memory IP limiter still applies either way.
const submitLimit = 10

// ListMessages handles GET /api/messages
func (h *Handler) ListMessages(c *gin.Context) {
	views, err := h.Store.ListMessages(viewerID(c))
	if err != nil {
		fail(c, err, "Failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// CreateMessage handles POST /api/messages (multipart: content + optional mediaFile)
func (h *Handler) CreateMessage(c *gin.Context) {
	viewer := viewerID(c)
	if ok, err := database.CheckSubmitLimit(viewer, submitLimit, time.Minute); err == nil && !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "msg": "Too many submissions, please slow down"})
		return
	}

	content := c.PostForm("content")

	var media *store.Media
	file, header, err := c.Request.FormFile("mediaFile")
	switch {
	case err == nil:
		defer file.Close()

		maxBytes := h.Cfg.MaxMediaMB * 1024 * 1024
		kind, verr := store.ValidateMedia(header.Header.Get("Content-Type"), header.Size, maxBytes)
		if verr != nil {
			fail(c, verr, "Only jpg/png/gif/webp images and mp4/webm videos up to the size limit are accepted")
			return
		}

		data, rerr := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if rerr != nil {
			fail(c, rerr, "Failed to read upload")
			return
		}
		if int64(len(data)) > maxBytes {
			fail(c, store.ErrTooLarge, "Media file exceeds the size limit")
			return
		}

		media = &store.Media{
			Data:     data,
			Kind:     kind,
			MimeType: header.Header.Get("Content-Type"),
			FileName: utils.SanitizeFilename(header.Filename),
		}
	case errors.Is(err, http.ErrMissingFile):
		// Text-only message
	default:
		fail(c, store.ErrValidation, "Malformed upload")
		return
	}

	msg, err := h.Store.CreateMessage(content, media)
	if err != nil {
		fail(c, err, "A message needs text or a media file")
		return
	}

	logger.Info().Str("message_id", msg.ID).Bool("has_media", media != nil).Msg("message created")
	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Message posted", "data": msg})
}

// DeleteMessage handles DELETE /api/messages/:id (admin gated by middleware)
func (h *Handler) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteMessage(id); err != nil {
		fail(c, err, "Message not found")
		return
	}

	logger.Info().Str("message_id", id).Msg("message deleted by admin")
	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Message deleted"})
}

// ToggleLike handles POST /api/messages/:id/like
func (h *Handler) ToggleLike(c *gin.Context) {
	liked, count, err := h.Store.ToggleLike(c.Param("id"), viewerID(c))
	if err != nil {
		fail(c, err, "Message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "isLiked": liked, "likeCount": count})
}
