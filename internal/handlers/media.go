package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FetchMedia handles GET /api/media/:id — streams the inline payload back
// with the stored MIME type and the original filename as a disposition hint.
func (h *Handler) FetchMedia(c *gin.Context) {
	media, err := h.Store.FetchMedia(c.Param("id"))
	if err != nil {
		fail(c, err, "File not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", media.FileName))
	c.Data(http.StatusOK, media.MimeType, media.Data)
}
