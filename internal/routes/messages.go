package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/handlers"
	"github.com/stephen-1-2/Anonymous-Wall/internal/middleware"
)

func RegisterMessageRoutes(r gin.IRouter, h *handlers.Handler) {
	messages := r.Group("/messages")
	{
		messages.GET("", h.ListMessages)
		messages.POST("", middleware.SubmitRateLimit(), h.CreateMessage)
		messages.DELETE("/:id", middleware.RequireAdmin(h.Gate), h.DeleteMessage)

		messages.POST("/:id/like", h.ToggleLike)
		messages.GET("/:id/comments", h.ListComments)
		messages.POST("/:id/comments", middleware.SubmitRateLimit(), h.AddComment)
	}

	comments := r.Group("/comments")
	{
		comments.DELETE("/:id", h.DeleteComment)
	}

	r.GET("/media/:id", h.FetchMedia)
}
