package config

import (
	"os"

	"github.com/joho/godotenv"
)

type envConfig struct {
	OUT_DIR           string
	LOG_FILE_PATH     string
	BENCH_PRESET_FILE string
}

var DefaultEnvConfig envConfig

// LoadEnvConfig loads a .env file if present and fills DefaultEnvConfig from
// the process environment. A missing .env file is not an error.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = envConfig{
		OUT_DIR:           getEnvOrDefault("OUT_DIR", "."),
		LOG_FILE_PATH:     os.Getenv("LOG_FILE_PATH"),
		BENCH_PRESET_FILE: os.Getenv("BENCH_PRESET_FILE"),
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
