package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string // empty disables auth on mutating routes
}

// Load reads configuration from the environment with local defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/betaview.db"
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}
