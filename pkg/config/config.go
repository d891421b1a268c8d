package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Quote export branding. The builder and sink only consume these values,
	// so a deployment can relabel the document without a code change.
	QuoteTitle     string `envconfig:"QUOTE_TITLE" default:"Quote"`
	QuoteFilename  string `envconfig:"QUOTE_FILENAME" default:"quote.pdf"`
	CurrencyPrefix string `envconfig:"CURRENCY_PREFIX" default:""`
}

// Load reads configuration from the environment, with a .env file as an
// optional local override. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
