package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override them).
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = v
	}
	if v, ok := os.LookupEnv("GIN_MODE"); ok {
		config.GinMode = v
	}
	if v, ok := os.LookupEnv("RESEND_API_KEY"); ok {
		config.ResendAPIKey = v
	}
	if v, ok := os.LookupEnv("MAIL_FROM"); ok {
		config.MailFrom = v
	}
	if v, ok := os.LookupEnv("TEST_MAIL_RECIPIENT"); ok {
		config.TestMailRecipient = v
	}
}
