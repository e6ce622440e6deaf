package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

const (
	EmailBackendSES  = "ses"
	EmailBackendSMTP = "smtp"
)

type Config struct {
	IsTestMode       bool   `env:"TEST_MODE"`
	Addr             string `env:"ADDR" envDefault:"0.0.0.0:8080"`
	Secret           string `env:"SECRET"`
	PostgresqlURL    string `env:"POSTGRESQL_URL"`
	RedisURL         string `env:"REDIS_URL"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PasswordResetBaseURL string `env:"PASSWORD_RESET_BASE_URL"`

	EmailBackend string `env:"EMAIL_BACKEND" envDefault:"smtp"`

	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	EmailSender        string `env:"EMAIL_SENDER"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("SECRET must be set")
	}
	if c.PostgresqlURL == "" {
		return fmt.Errorf("POSTGRESQL_URL must be set")
	}
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set")
	}
	if c.PasswordResetBaseURL == "" {
		return fmt.Errorf("PASSWORD_RESET_BASE_URL must be set")
	}

	switch c.EmailBackend {
	case EmailBackendSES:
		if c.AWSRegion == "" || c.AWSAccessKeyID == "" || c.AWSSecretAccessKey == "" {
			return fmt.Errorf("AWS_REGION, AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set for the ses email backend")
		}
		if c.EmailSender == "" {
			return fmt.Errorf("EMAIL_SENDER must be set for the ses email backend")
		}
	case EmailBackendSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST must be set for the smtp email backend")
		}
		if c.SMTPUsername == "" {
			return fmt.Errorf("SMTP_USERNAME must be set for the smtp email backend")
		}
	default:
		return fmt.Errorf("invalid EMAIL_BACKEND value: %q", c.EmailBackend)
	}

	return nil
}
