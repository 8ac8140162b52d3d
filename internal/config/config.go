package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	Email   EmailConfig
	Storage StorageConfig
}

type EmailConfig struct {
	Host     string `envconfig:"EMAIL_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"EMAIL_PORT" default:"587"`
	User     string `envconfig:"EMAIL_USER"`
	Password string `envconfig:"EMAIL_PASS"`
	From     string `envconfig:"EMAIL_FROM" default:"Domains.ge <no-reply@domains.ge>"`
}

type StorageConfig struct {
	Region      string `envconfig:"AWS_REGION" default:"eu-central-1"`
	Bucket      string `envconfig:"MEDIA_BUCKET" default:"domainsmarket-media"`
	AccessKeyID string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretKey   string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	EndpointURL string `envconfig:"AWS_ENDPOINT_URL"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
