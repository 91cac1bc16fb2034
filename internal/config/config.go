package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds document store configuration
type Config struct {
	LogLevel string
	Store    StoreConfig
	Metrics  MetricsConfig
}

type StoreConfig struct {
	// Validate rejects documents missing required fields instead of storing them as-is.
	Validate bool
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DOCSTORE_LOG_LEVEL", "info")
	v.SetDefault("DOCSTORE_VALIDATE", false)
	v.SetDefault("DOCSTORE_METRICS_ENABLED", true)
	v.SetDefault("DOCSTORE_METRICS_NAMESPACE", "docstore")

	cfg := &Config{
		LogLevel: v.GetString("DOCSTORE_LOG_LEVEL"),
		Store: StoreConfig{
			Validate: v.GetBool("DOCSTORE_VALIDATE"),
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("DOCSTORE_METRICS_ENABLED"),
			Namespace: v.GetString("DOCSTORE_METRICS_NAMESPACE"),
		},
	}
	return cfg, nil
}
