package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	appconfig "github.com/stephen-1-2/Anonymous-Wall/internal/config"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", AdminSecretHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if appconfig.AppConfig != nil && appconfig.AppConfig.FrontendURL != "" {
		cfg.AllowOrigins = []string{appconfig.AppConfig.FrontendURL}
	} else {
		// The wall is anonymous; without a configured frontend origin it is
		// served open, like the original deployment.
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
