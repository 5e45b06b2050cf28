package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/utils"
)

var backgroundExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

func (h *Handler) backgroundsDir() string {
	return filepath.Join(h.Cfg.DataDir, "backgrounds")
}

// ListBackgrounds handles GET /api/backgrounds — available background
// images plus the currently selected one.
func (h *Handler) ListBackgrounds(c *gin.Context) {
	entries, err := os.ReadDir(h.backgroundsDir())
	if err != nil && !os.IsNotExist(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to list backgrounds"})
		return
	}

	list := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if backgroundExts[strings.ToLower(filepath.Ext(e.Name()))] {
			list = append(list, "/assets/backgrounds/"+e.Name())
		}
	}

	cfg, err := h.Store.BoardConfig()
	if err != nil {
		fail(c, err, "Board configuration missing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"list":    list,
		"current": cfg.CurrentBackground,
	}})
}

// SetBackground handles POST /api/backgrounds — either an existing
// background referenced by bgUrl, or a freshly uploaded image.
func (h *Handler) SetBackground(c *gin.Context) {
	if bgURL := c.PostForm("bgUrl"); bgURL != "" {
		if err := h.Store.SetBackground(bgURL); err != nil {
			fail(c, err, "Board configuration missing")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Background updated", "data": bgURL})
		return
	}

	file, header, err := c.Request.FormFile("customBg")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Pick or upload a background image"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Malformed upload"})
		return
	}
	defer file.Close()

	maxBytes := h.Cfg.MaxBackgroundMB * 1024 * 1024
	if !store.IsAllowedImage(header.Header.Get("Content-Type")) {
		fail(c, store.ErrUnsupportedMedia, "Backgrounds must be jpg/png/gif/webp images")
		return
	}
	if header.Size > maxBytes {
		fail(c, store.ErrTooLarge, "Background image exceeds the size limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil || int64(len(data)) > maxBytes {
		fail(c, store.ErrTooLarge, "Background image exceeds the size limit")
		return
	}

	dir := h.backgroundsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to store background"})
		return
	}

	ext := strings.ToLower(filepath.Ext(utils.SanitizeFilename(header.Filename)))
	name := fmt.Sprintf("bg_%d%s", time.Now().UnixMilli(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to store background"})
		return
	}

	ref := "/assets/backgrounds/" + name
	if err := h.Store.SetBackground(ref); err != nil {
		fail(c, err, "Board configuration missing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Background updated", "data": ref})
}
