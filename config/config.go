package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Auth strategy selected once at startup, never re-decided per login.
const (
	AuthModeCredentials = "credentials"
	AuthModeDev         = "dev"
)

// Storage backend for the scoped data store.
const (
	StoragePostgres = "postgres"
	StorageFile     = "file"
	StorageMemory   = "memory"
)

type Config struct {
	AppPort string
	AppEnv  string

	JWTSecret string
	AuthMode  string

	StorageBackend string
	DataDir        string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; real env vars win when both are present.
	_ = godotenv.Load()

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),
		AuthMode:  get("AUTH_MODE", AuthModeDev),

		StorageBackend: get("STORAGE_BACKEND", StorageFile),
		DataDir:        get("DATA_DIR", "./data"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "collegeportal"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
