package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Rifas"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"rifas"`

		ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
	}

	// Auth holds the shared operator password and the session settings.
	// A session token expires after IdleTimeout without activity.
	Auth struct {
		OperatorPassword string        `envconfig:"OPERATOR_PASSWORD" required:"true"`
		JWTSecret        string        `envconfig:"JWT_SECRET" required:"true"`
		IdleTimeout      time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"10m"`
	}

	Assets struct {
		Dir string `envconfig:"ASSET_DIR" default:"./assets"`
	}

	WhatsApp struct {
		CountryCode string `envconfig:"WHATSAPP_COUNTRY_CODE" default:"58"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
