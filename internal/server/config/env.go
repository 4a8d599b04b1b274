package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from environment variables. A .env file
// in the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not overwrite).
//
// Recognized keys: SERVER_ADDRESS, DATABASE_DSN, SECRET_KEY,
// TOKEN_VALIDITY (Go duration string), MAX_OPEN_CONNS, DEV_MODE,
// S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		config.ServerAddress = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("MAX_OPEN_CONNS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxOpenConns = n
		}
	}
	if v, ok := os.LookupEnv("DEV_MODE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.DevMode = b
		}
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
