package config

import (
	"os"
	"strconv"
)

// DefaultTSIMinutes is the nominal number of minutes between consecutive
// location measurements when TSI_MINUTES is not set.
const DefaultTSIMinutes = 5

// Config holds application configuration
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	SourceURL  string // hosted snapshot JSON export URL
	TSIMinutes int    // temporal sampling interval in minutes
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/pings/pings.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	tsi := DefaultTSIMinutes
	if v := os.Getenv("TSI_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tsi = n
		}
	}

	return &Config{
		Port:       port,
		DBPath:     dbPath,
		JWTSecret:  jwtSecret,
		SourceURL:  os.Getenv("SOURCE_URL"),
		TSIMinutes: tsi,
	}
}
