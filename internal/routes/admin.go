package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/handlers"
)

func RegisterAdminRoutes(r gin.IRouter, h *handlers.Handler) {
	admin := r.Group("/admin")
	{
		admin.POST("/verify", h.VerifyAdmin)
	}
}
