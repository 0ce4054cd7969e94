package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Seed    SeedConfig
}

type StorageConfig struct {
	DataDir string
}

type SeedConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			DataDir: getEnv("PHARMACY_DATA_DIR", "data"),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("PHARMACY_SEED", true),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
