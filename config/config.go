package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting, loaded from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Site Admin"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactFrom  string `env:"CONTACT_FROM_EMAIL"`
	ContactTo    string `env:"CONTACT_TO_EMAIL"`
}

// Load reads .env when present and parses the environment into a Config.
func Load() (Config, error) {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return env.ParseAs[Config]()
}
