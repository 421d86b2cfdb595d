// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime settings of the directory server. Every field
// maps to one environment variable and carries a default that works for
// local development, so a bare `go run ./cmd/server` comes up seeded on
// port 8080.
type Config struct {
	Env          string  // application environment ("dev", "prod")
	Port         string  // HTTP port to listen on
	BcryptCost   int     // bcrypt cost for hashing user passwords
	SeedDemo     bool    // install the demo dataset on startup when the store is empty
	NearbyRadius float64 // default radius in miles for the nearby query
}

// Load reads the environment and returns a Config with defaults applied.
func Load() Config {
	return Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("APP_PORT", "8080"),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		SeedDemo:     envBool("SEED_DEMO", true),
		NearbyRadius: envFloat("NEARBY_RADIUS_MILES", 10),
	}
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
