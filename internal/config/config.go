// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string        `env:"DISCORD_TOKEN"`
	StoragePath   string        `env:"STORAGE_PATH" envDefault:"datastore.json"`
	CommandPrefix string        `env:"COMMAND_PREFIX" envDefault:"!"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string        `env:"LOG_FILE"`
	DailyCooldown time.Duration `env:"DAILY_COOLDOWN" envDefault:"24h"`
	CleanInterval time.Duration `env:"COOLDOWN_CLEAN_INTERVAL" envDefault:"1m"`
	RatePerMinute int           `env:"RATE_PER_MINUTE" envDefault:"20"`
	DeveloperIDs  []string      `env:"DEV_IDS" envSeparator:","`
}

// New loads .env (if present) and the process environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
	return Parse(env.Options{})
}

// Parse reads the configuration with the given env options. Tests pass
// Environment to avoid touching the process environment.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.CommandPrefix) == "" || strings.ContainsAny(c.CommandPrefix, " \t") {
		errs = append(errs, fmt.Errorf("COMMAND_PREFIX must be non-empty and contain no spaces"))
	}
	if c.DailyCooldown <= 0 {
		errs = append(errs, fmt.Errorf("DAILY_COOLDOWN must be positive"))
	}
	if c.CleanInterval <= 0 {
		errs = append(errs, fmt.Errorf("COOLDOWN_CLEAN_INTERVAL must be positive"))
	}
	if c.RatePerMinute < 1 {
		errs = append(errs, fmt.Errorf("RATE_PER_MINUTE must be at least 1"))
	}
	return errors.Join(errs...)
}

// RequireDiscord checks the settings only the Discord host needs.
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}
	return nil
}

// IsDeveloper reports whether userID is listed in DEV_IDS.
func (c *Config) IsDeveloper(userID string) bool {
	for _, id := range c.DeveloperIDs {
		if id == userID {
			return true
		}
	}
	return false
}
