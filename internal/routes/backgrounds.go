package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/handlers"
)

func RegisterBackgroundRoutes(r gin.IRouter, h *handlers.Handler) {
	backgrounds := r.Group("/backgrounds")
	{
		backgrounds.GET("", h.ListBackgrounds)
		backgrounds.POST("", h.SetBackground)
	}
}
