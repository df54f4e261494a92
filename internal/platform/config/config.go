// Package config centralizes every runtime setting of the service. All
// environment reads happen here; the rest of the code receives values
// through this struct.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration parameters of the application.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"PORT" envDefault:"8080"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTExpire time.Duration `env:"JWT_EXPIRE" envDefault:"720h"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	GeocoderAPIKey  string        `env:"GEOCODER_API_KEY,required"`
	GeocoderBaseURL string        `env:"GEOCODER_BASE_URL" envDefault:"https://api.positionstack.com/v1"`
	GeocoderTimeout time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`
	// GeocoderRateLimit caps forward-geocode calls per minute.
	GeocoderRateLimit int `env:"GEOCODER_RATE_LIMIT" envDefault:"25"`

	SMTP struct {
		Host     string `env:"SMTP_HOST"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		Username string `env:"SMTP_USERNAME"`
		Password string `env:"SMTP_PASSWORD"`
		From     string `env:"SMTP_FROM" envDefault:"noreply@mtc-backend.dev"`
	}

	FileUploadPath string `env:"FILE_UPLOAD_PATH" envDefault:"./public/uploads"`
	MaxFileSize    int64  `env:"MAX_FILE_SIZE" envDefault:"1000000"`

	SeedDataPath string `env:"SEED_DATA_PATH" envDefault:"./data-examples"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present, which keeps local development
// setups out of the shell profile.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
