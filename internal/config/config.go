package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig holds environment driven configuration values. Secrets must come
// from the environment (or a .env file loaded at startup), never from code.
type AppConfig struct {
	Port          string
	GinMode       string
	DatabaseURL   string
	SessionSecret string
	MediaRoot     string

	// Feed cache
	CacheTTLSeconds int

	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// Load reads configuration from the environment, applying defaults suitable
// for local development.
func Load() AppConfig {
	return AppConfig{
		Port:          getenv("PORT", "8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DatabaseURL:   getenv("DATABASE_URL", ""),
		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),
		MediaRoot:     getenv("MEDIA_ROOT", "./media"),

		CacheTTLSeconds: getint("CACHE_TTL_SECONDS", 20),

		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogPath:       getenv("LOG_PATH", ""),
		LogMaxSizeMB:  getint("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getint("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getint("LOG_MAX_AGE_DAYS", 7),
		LogCompress:   getbool("LOG_COMPRESS", false),
	}
}

// CacheTTL is the expiry window for the cached index feed.
func (c AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
