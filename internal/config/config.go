package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config collects every runtime knob. Values come from the environment with
// local-dev fallbacks, .env files are honoured for development.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string

	// PostsPerPage is the fixed page size of every listing view.
	PostsPerPage int
	// IndexCacheTTL is how long the rendered home listing is replayed as-is.
	IndexCacheTTL time.Duration
	// CacheCapacity bounds the page cache entry count.
	CacheCapacity int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	return &Config{
		Port:          envStr("PORT", "8080"),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		SessionSecret: envStr("SESSION_SECRET", "secret_key_change_me"),
		PostsPerPage:  envInt("POSTS_PER_PAGE", 10),
		IndexCacheTTL: envDuration("INDEX_CACHE_TTL", 20*time.Second),
		CacheCapacity: envInt("CACHE_CAPACITY", 500),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
	}
	return fallback
}
