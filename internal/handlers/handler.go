package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/admin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
	"github.com/stephen-1-2/Anonymous-Wall/internal/store"
	apperrors "github.com/stephen-1-2/Anonymous-Wall/pkg/errors"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/logger"
)

// Handler bundles the wall's dependencies. Everything is injected at
// construction; handlers never reach for package globals.
type Handler struct {
	Store *store.Store
	Gate  *admin.Gate
	Cfg   *config.Config
}

func New(s *store.Store, g *admin.Gate, cfg *config.Config) *Handler {
	return &Handler{Store: s, Gate: g, Cfg: cfg}
}

// viewerID reads the derived identity seeded by the identity middleware.
func viewerID(c *gin.Context) string {
	return c.GetString("userId")
}

// fail translates a store error into the wire envelope. Domain sentinels
// map to their HTTP codes; anything else is an infrastructure failure and
// reads as storage unavailable so callers can tell "no data" from "store
// down".
func fail(c *gin.Context, err error, msg string) {
	appErr := translate(err, msg)
	if appErr.Code >= 500 {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("storage failure")
	}
	c.JSON(appErr.Code, gin.H{"success": false, "msg": appErr.Message})
}

func translate(err error, msg string) *apperrors.AppError {
	switch {
	case errors.Is(err, store.ErrValidation):
		return apperrors.BadRequest(msg)
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFound(msg)
	case errors.Is(err, store.ErrForbidden):
		return apperrors.Forbidden(msg)
	case errors.Is(err, store.ErrUnsupportedMedia):
		return apperrors.UnsupportedMedia(msg)
	case errors.Is(err, store.ErrTooLarge):
		return apperrors.PayloadTooLarge(msg)
	default:
		return apperrors.StorageUnavailable("Storage unavailable")
	}
}
