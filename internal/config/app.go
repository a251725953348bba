package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Environment     string
	LogLevel        string
	HTTPAddr        string
	GRPCAddr        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	SeedFile        string
	AutoMigrate     bool
}

// LoadDotEnv reads a .env file into the process environment. A missing file is
// not an error; variables already set win over the file.
func LoadDotEnv(path string) (bool, error) {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getEnv("GRPC_ADDR", ":50051"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,
		CORSOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SeedFile:        getEnv("SEED_FILE", ""),
		AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
	}

	if cfg.HTTPAddr == "" && cfg.GRPCAddr == "" {
		return nil, fmt.Errorf("invalid app config: at least one of HTTP_ADDR/GRPC_ADDR is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("invalid app config: SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
