package config

import (
	"os"
)

type Config struct {
	Port      string
	DBDriver  string // sqlite | mysql
	DBDSN     string
	LogLevel  string
	LogFormat string
	JWTSecret string
}

// Load reads configuration from the environment. The defaults match the
// demo setup: an in-memory sqlite store and port 3001.
func Load() *Config {
	cfg := &Config{}
	cfg.Port = getEnv("PORT", "3001")
	cfg.DBDriver = getEnv("DB_DRIVER", "sqlite")
	switch cfg.DBDriver {
	case "mysql":
		cfg.DBDSN = getEnv("DB_DSN", "root:123456@tcp(localhost:3306)/rooms_sana?charset=utf8mb4&parseTime=True&loc=Local")
	default:
		cfg.DBDSN = getEnv("DB_DSN", "file::memory:?cache=shared")
	}
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")
	cfg.JWTSecret = getEnv("JWT_SECRET", "a-very-secure-secret-that-should-be-in-config-file")
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
