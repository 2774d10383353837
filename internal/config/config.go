package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven configuration. Values come from
// UBERMELON_* variables; a .env file is loaded by main before this runs.
type Config struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// DatabaseURL selects the Postgres loaders when set; otherwise the
	// catalog and customers come from the flat files below.
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	MelonFile    string `envconfig:"MELON_FILE" default:"melons.txt"`
	CustomerFile string `envconfig:"CUSTOMER_FILE" default:"customers.txt"`

	SessionSecret string        `envconfig:"SESSION_SECRET" default:"dev-only-secret"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("UBERMELON", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
