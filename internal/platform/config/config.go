// Package config loads server configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-level configuration for the API server.
type Config struct {
	Port      string        // HTTP listen port
	JWTSecret string        // HMAC secret for access tokens
	TokenTTL  time.Duration // Access token lifetime
	FrontURL  string        // Base URL of the frontend, used for shareable task links
}

// LoadConfig reads configuration from the environment, applying defaults
// suitable for local development.
func LoadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ttl := 72 * time.Hour
	if h := os.Getenv("JWT_EXPIRATION_HOURS"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Hour
		}
	}

	front := os.Getenv("FRONT_URL")
	if front == "" {
		front = "http://localhost:5173"
	}

	return Config{
		Port:      port,
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  ttl,
		FrontURL:  front,
	}
}
