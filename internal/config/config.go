package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Mode selects "batch" (directory run) or "serve" (HTTP API).
	Mode string

	// Batch surface
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount int

	// Extraction rules override (YAML), optional.
	RulesFile string

	// HTTP surface
	Port   string
	APIKey string // empty disables auth

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Mode: envOr("MODE", "batch"),

		InputDir:  envOr("INPUT_DIR", "./input"),
		OutputDir: envOr("OUTPUT_DIR", "./output"),

		WorkerCount: envInt("WORKER_COUNT", 4),

		RulesFile: os.Getenv("RULES_FILE"),

		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("OUTLINER_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Mode != "batch" && c.Mode != "serve" {
		return fmt.Errorf("MODE must be batch or serve, got %q", c.Mode)
	}
	if c.Mode == "batch" && c.InputDir == "" {
		return fmt.Errorf("INPUT_DIR is required in batch mode")
	}
	if c.Mode == "batch" && c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required in batch mode")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
