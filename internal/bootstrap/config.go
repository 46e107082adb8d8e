package bootstrap

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	HMACKey []byte

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ClusterInterval is how often the clustering job runs.
	ClusterInterval time.Duration
	// ClusterRadiusKm is the great-circle distance, in kilometers, within
	// which an unmatched donation joins an existing cluster.
	ClusterRadiusKm float64
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		HMACKey: []byte(getEnv("HMAC_KEY", "change-me-in-production")),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		ClusterInterval: getEnvDuration("CLUSTER_INTERVAL", 30*time.Minute),
		ClusterRadiusKm: getEnvFloat("CLUSTER_RADIUS_KM", 2.0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
