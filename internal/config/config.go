package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr          string
	DataPath          string
	ShutdownTimeout   time.Duration
	WhatsAppPhone     string
	SubscribeEndpoint string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		DataPath:          envOrDefault("DATA_PATH", "storefront.db"),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		WhatsAppPhone:     envOrDefault("WHATSAPP_PHONE", "51994992633"),
		SubscribeEndpoint: envOrDefault("SUBSCRIBE_ENDPOINT", ""),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
