package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port  string
	DBUrl string
	// Token signing
	SecretKey string
	Algorithm string // HMAC family identifier (HS256/HS384/HS512)
	// Token lifetime in minutes
	AccessTokenExpireMinutes int
	// Password hashing cost factor
	BcryptCost int
	// CORS
	FrontendURL string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		DBUrl:                    getEnv("DATABASE_URL", ""),
		SecretKey:                getEnv("SECRET_KEY", ""),
		Algorithm:                getEnv("ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24),
		BcryptCost:               getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		FrontendURL:              getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SecretKey == "" {
		log.Println("WARNING: SECRET_KEY is missing. Tokens will be signed with an empty secret.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
