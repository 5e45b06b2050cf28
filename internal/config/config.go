package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Shared secret for the admin gate. Hashed before it is persisted in
	// the board config row; never stored in plaintext.
	AdminSecret string `mapstructure:"ADMIN_SECRET"`

	// Upload ceilings, in megabytes. Media covers both images and video.
	MaxMediaMB      int64 `mapstructure:"MAX_MEDIA_MB"`
	MaxBackgroundMB int64 `mapstructure:"MAX_BACKGROUND_MB"`

	// Directory for background images served as static assets.
	DataDir string `mapstructure:"DATA_DIR"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ADMIN_SECRET", "admin123")
	viper.SetDefault("MAX_MEDIA_MB", 50)
	viper.SetDefault("MAX_BACKGROUND_MB", 5)
	viper.SetDefault("DATA_DIR", "data")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
