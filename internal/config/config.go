package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL     string
	BackendTimeout time.Duration

	JWTSecret  string
	ServerPort string

	AdminEmail        string
	AdminPasswordHash string

	RedisURL string
	CacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT_MS", 10_000) * time.Millisecond,

		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@salon.local"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDuration("CACHE_TTL_MS", 60_000) * time.Millisecond,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(def)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
