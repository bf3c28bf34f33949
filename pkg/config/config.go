package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string        `yaml:"port"`
	GinMode        string        `yaml:"gin_mode"`
	BackendURL     string        `yaml:"backend_url"`
	BackendTimeout time.Duration `yaml:"backend_timeout"`
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:           "8080",
		GinMode:        "release",
		BackendURL:     "http://localhost:5000",
		BackendTimeout: 30 * time.Second,
	}

	// Optional YAML file; environment variables still win below
	if file := getEnv("CONFIG_FILE", "config.yaml"); file != "" {
		if data, err := os.ReadFile(file); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.BackendURL = getEnv("BACKEND_URL", cfg.BackendURL)
	if timeout := os.Getenv("BACKEND_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			cfg.BackendTimeout = parsed
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
