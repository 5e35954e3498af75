package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type envConfig struct {
	APP_PORT string

	// STORAGE_BACKEND selects the repository implementation:
	// "memory" (default), "postgres" or "datastore".
	STORAGE_BACKEND string

	DB_HOST              string
	DB_PORT              string
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_MAX_OPEN_CONNS    int
	DB_MAX_IDLE_CONNS    int
	DB_CONN_MAX_LIFETIME time.Duration

	GCP_PROJECT_ID string

	JWT_SECRET    string
	LOG_FILE_PATH string
}

var DefaultEnvConfig envConfig

// LoadEnvConfig reads .env if present and fills DefaultEnvConfig from
// the environment. Missing optional keys fall back to local defaults.
func LoadEnvConfig() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	DefaultEnvConfig = envConfig{
		APP_PORT:             getEnv("APP_PORT", "8080"),
		STORAGE_BACKEND:      getEnv("STORAGE_BACKEND", "memory"),
		DB_HOST:              getEnv("DB_HOST", "localhost"),
		DB_PORT:              getEnv("DB_PORT", "5432"),
		DB_USER:              getEnv("DB_USER", "postgres"),
		DB_PASSWORD:          getEnv("DB_PASSWORD", ""),
		DB_NAME:              getEnv("DB_NAME", "todoapp"),
		DB_SSL_MODE:          getEnv("DB_SSL_MODE", "disable"),
		DB_MAX_OPEN_CONNS:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DB_MAX_IDLE_CONNS:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DB_CONN_MAX_LIFETIME: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		GCP_PROJECT_ID:       getEnv("GCP_PROJECT_ID", ""),
		JWT_SECRET:           getEnv("JWT_SECRET", "dev-secret"),
		LOG_FILE_PATH:        getEnv("LOG_FILE_PATH", ""),
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
