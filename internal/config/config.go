package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries the runtime settings for the service. The store path is an
// explicit value threaded into the data layer so tests can point it at an
// isolated file.
type Config struct {
	StorePath string
	SourceDir string
	Port      int
}

const (
	defaultStorePath = "food_waste.db"
	defaultSourceDir = "."
	defaultPort      = 8080
)

func Load() *Config {
	cfg := &Config{
		StorePath: defaultStorePath,
		SourceDir: defaultSourceDir,
		Port:      defaultPort,
	}

	if v := os.Getenv("FOODWASTE_DB"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("FOODWASTE_SOURCE_DIR"); v != "" {
		cfg.SourceDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	return cfg
}
