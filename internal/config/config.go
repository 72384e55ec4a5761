package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port                string
	MongoURI            string
	MongoDB             string
	MongoUserCollection string
	MongoPostCollection string
	PostgresDSN         string
	RedisAddr           string
	RedisPassword       string
	JWTSecret           string
}

// Load reads a local .env file when present, then the environment. The
// signing secret has no default; main refuses to start without it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                getenv("PORT", "8080"),
		MongoURI:            getenv("DATABASE_URL", ""),
		MongoDB:             getenv("MONGO_DB_DATABASE", "postfeed"),
		MongoUserCollection: getenv("MONGODB_USER_COLLECTION", "users"),
		MongoPostCollection: getenv("MONGODB_POST_COLLECTION", "posts"),
		PostgresDSN:         getenv("POSTGRES_DSN", ""),
		RedisAddr:           getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword:       getenv("REDIS_PASSWORD", ""),
		JWTSecret:           getenv("JWT_SECRET", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
