package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	StorageBucket   string
	Environment     string
	LogLevel        string

	ServiceAccountJSON string
	ServiceAccountPath string

	MaxUploadBytes        int64
	RatingRateLimit       int
	CommissionRate        float64
	TalentPoolFanoutLimit int
}

func Load() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		MaxUploadBytes:        getEnvAsInt64("MAX_UPLOAD_BYTES", 10*1024*1024), // 10MB
		RatingRateLimit:       int(getEnvAsInt64("RATING_RATE_LIMIT", 10)),
		CommissionRate:        getEnvAsFloat("COMMISSION_RATE", 0.15),
		TalentPoolFanoutLimit: int(getEnvAsInt64("TALENT_POOL_FANOUT_LIMIT", 100)),
	}

	if config.StorageBucket == "" && config.FirebaseProject != "" {
		config.StorageBucket = config.FirebaseProject + ".appspot.com"
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
