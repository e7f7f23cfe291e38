package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	TelegramToken       string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	ServiceAccountEmail string `env:"GOOGLE_SERVICE_ACCOUNT_EMAIL,required,notEmpty"`
	PrivateKey          string `env:"GOOGLE_PRIVATE_KEY,required,notEmpty"`
	SpreadsheetID       string `env:"GOOGLE_SHEETS_DOCUMENT_ID,required,notEmpty"`
	Port                string `env:"PORT" envDefault:"5000"`
	FormWindow          FormWindow
}

// FormWindow defines the daily interval during which the form is open
type FormWindow struct {
	Start    string `env:"FORM_WINDOW_START" envDefault:"16:00:00"`
	End      string `env:"FORM_WINDOW_END" envDefault:"18:00:00"`
	Timezone string `env:"FORM_TIMEZONE" envDefault:"Asia/Dhaka"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	// Keys arrive with literal \n escapes when set through env tooling
	cfg.PrivateKey = strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields env tags alone cannot express
func (c *Config) Validate() error {
	if !strings.Contains(c.PrivateKey, "PRIVATE KEY") {
		return fmt.Errorf("GOOGLE_PRIVATE_KEY does not look like PEM key material")
	}
	if c.FormWindow.Start == "" || c.FormWindow.End == "" || c.FormWindow.Timezone == "" {
		return fmt.Errorf("form window start, end and timezone must all be set")
	}
	return nil
}
