package config

import (
	"os"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App     AppConfig
	Upload  UploadConfig
	YouTube YouTubeConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type UploadConfig struct {
	// Dir is the directory tree uploaded photos are written to.
	// Created on first use if absent.
	Dir string
	// MaxSize is the per-file upload quota in bytes.
	MaxSize int64
}

type YouTubeConfig struct {
	// APIKey and ChannelID are both required for live fetching.
	// When either is empty the youtube endpoints serve cached or
	// default data instead.
	APIKey    string
	ChannelID string
}

const defaultMaxUploadSize = 10 << 20 // 10 MiB

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Squad Website API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			MaxSize: defaultMaxUploadSize,
		},
		YouTube: YouTubeConfig{
			// The deployment has used a few different variable names
			// over time; the first non-empty one wins.
			APIKey:    getEnvFirst("YOUTUBE_API_KEY", "YOUTUBE_API", "API_KEY"),
			ChannelID: getEnvFirst("YOUTUBE_CHANNEL_ID", "CHANNEL_ID"),
		},
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFirst returns the first non-empty value among the given keys.
func getEnvFirst(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
