// Package config provides configuration for the casino server
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the server
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Game     GameConfig
	Relay    RelayConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Development  bool
}

// DatabaseConfig holds the audit database configuration. An empty DSN
// disables the audit trail.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

// GameConfig holds table rules and the starting bankroll
type GameConfig struct {
	StartingBalance int64  `yaml:"starting_balance"`
	SlotMinBet      int64  `yaml:"slot_min_bet"`
	SlotMaxBet      int64  `yaml:"slot_max_bet"`
	SaveDir         string `yaml:"save_dir"`
}

// RelayConfig holds the dealer-commentary relay settings. An empty base
// URL disables commentary.
type RelayConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout time.Duration
}

// Load loads configuration from environment with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("CASINO_PORT", "8080"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			Development:  os.Getenv("CASINO_DEV") != "",
		},
		Database: DatabaseConfig{
			Driver: getEnv("CASINO_DB_DRIVER", "postgres"),
			DSN:    os.Getenv("CASINO_DB_DSN"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("CASINO_JWT_SECRET", "casino-dev-secret-change-in-production"),
			TokenExpiry: 24 * time.Hour,
		},
		Game: GameConfig{
			StartingBalance: 1000,
			SlotMinBet:      1,
			SlotMaxBet:      10,
			SaveDir:         getEnv("CASINO_SAVE_DIR", "saves"),
		},
		Relay: RelayConfig{
			BaseURL: os.Getenv("CASINO_RELAY_URL"),
			Timeout: 10 * time.Second,
		},
	}
}

// rulesFile mirrors the optional config.yaml layout.
type rulesFile struct {
	Game  GameConfig  `yaml:"game"`
	Relay RelayConfig `yaml:"relay"`
}

// LoadRules overlays table rules from a YAML file on top of the defaults.
// A missing file leaves the config untouched.
func (c *Config) LoadRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules rulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("failed to parse rules file: %w", err)
	}

	if rules.Game.StartingBalance > 0 {
		c.Game.StartingBalance = rules.Game.StartingBalance
	}
	if rules.Game.SlotMinBet > 0 {
		c.Game.SlotMinBet = rules.Game.SlotMinBet
	}
	if rules.Game.SlotMaxBet > 0 {
		c.Game.SlotMaxBet = rules.Game.SlotMaxBet
	}
	if rules.Game.SaveDir != "" {
		c.Game.SaveDir = rules.Game.SaveDir
	}
	if rules.Relay.BaseURL != "" {
		c.Relay.BaseURL = rules.Relay.BaseURL
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
