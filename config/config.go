package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL"  required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"katana_store"`
	Port         string `envconfig:"PORT"          default:"8000"`
	LogLevel     string `envconfig:"LOG_LEVEL"     default:"info"`
	RedisAddr    string `envconfig:"REDIS_ADDR"`                           // empty disables the catalog cache
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`                        // empty disables order event publishing
	KafkaTopic   string `envconfig:"KAFKA_TOPIC"   default:"order.created"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, Database=%s, LogLevel=%s", config.Port, config.DatabaseName, config.LogLevel)
		if config.DatabaseURL == "" {
			logger.Fatal("Configuration error: DATABASE_URL is not set")
		}
	})
	return &config
}
