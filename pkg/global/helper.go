package global

import (
	"context"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// GetAPIBaseURL returns the backend base URL the client talks to.
func GetAPIBaseURL() string {
	return GetEnvOrDefault("API_URL", "http://localhost:8080/")
}
