package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrJWTSecretRequired = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"development"`

	// An empty secret disables bearer-token auth on the API.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	VocabularyPath          string `env:"VOCABULARY_PATH"`
	VocabularyMinWordLength int    `env:"VOCABULARY_MIN_WORD_LENGTH" envDefault:"3"`
	VocabularyMaxWordLength int    `env:"VOCABULARY_MAX_WORD_LENGTH" envDefault:"10"`

	MaxPasswordLength int `env:"MAX_PASSWORD_LENGTH" envDefault:"128"`
	MaxWords          int `env:"MAX_WORDS" envDefault:"20"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "" {
		return Config{}, ErrJWTSecretRequired
	}

	return cfg, nil
}

func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
