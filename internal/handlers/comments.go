package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
)

// ListComments handles GET /api/messages/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	views, err := h.Store.ListComments(c.Param("id"), viewerID(c))
	if err != nil {
		fail(c, err, "Message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// AddComment handles POST /api/messages/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	// Body may be absent entirely; the store rejects empty content either way.
	_ = c.ShouldBindJSON(&input)

	comment, err := h.Store.AddComment(c.Param("id"), input.Content, viewerID(c))
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			fail(c, err, "Comment content must not be empty")
		} else {
			fail(c, err, "Message not found")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Comment posted", "data": comment})
}

// DeleteComment handles DELETE /api/comments/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.Store.DeleteComment(c.Param("id"), viewerID(c)); err != nil {
		if errors.Is(err, store.ErrForbidden) {
			fail(c, err, "You can only delete your own comments")
		} else {
			fail(c, err, "Comment not found")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Comment deleted"})
}
