package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first, if present; variables already
// set in the environment win over the file.
//
// Recognized variables:
//
//	ENDPOINT_ADDR   HTTP bind address
//	DATABASE_DSN    PostgreSQL DSN
//	SECRET_KEY      JWT HMAC secret key
func parseEnv(config *Config) {
	// missing .env is not an error
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
}
