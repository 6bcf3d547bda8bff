package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// envConfig is the DTO for environment-sourced settings. Deployment
// environments provide at least DATABASE_DSN and JWT_SECRET.
type envConfig struct {
	EndpointAddr          string        `env:"SERVER_ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY_DURATION"`
}

// parseEnv overlays values from the process environment. In development a
// .env file in the working directory is loaded first, if present.
func parseEnv(config *Config) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration
	}
}
