package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Game.StartingBalance != 1000 {
		t.Errorf("expected default bankroll 1000, got %d", cfg.Game.StartingBalance)
	}
	if cfg.Game.SlotMinBet != 1 || cfg.Game.SlotMaxBet != 10 {
		t.Errorf("unexpected slot band %d..%d", cfg.Game.SlotMinBet, cfg.Game.SlotMaxBet)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CASINO_PORT", "9999")
	cfg := Load()
	if cfg.Server.Port != "9999" {
		t.Errorf("expected port from env, got %s", cfg.Server.Port)
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	rules := `
game:
  starting_balance: 2500
  slot_max_bet: 25
relay:
  base_url: http://relay.local
`
	if err := os.WriteFile(path, []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if err := cfg.LoadRules(path); err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	if cfg.Game.StartingBalance != 2500 {
		t.Errorf("expected bankroll 2500, got %d", cfg.Game.StartingBalance)
	}
	if cfg.Game.SlotMaxBet != 25 {
		t.Errorf("expected slot max 25, got %d", cfg.Game.SlotMaxBet)
	}
	// Unset keys keep their defaults.
	if cfg.Game.SlotMinBet != 1 {
		t.Errorf("expected slot min untouched, got %d", cfg.Game.SlotMinBet)
	}
	if cfg.Relay.BaseURL != "http://relay.local" {
		t.Errorf("unexpected relay url %q", cfg.Relay.BaseURL)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	cfg := Load()
	if err := cfg.LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing rules file must not error, got %v", err)
	}
}

func TestLoadRulesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load()
	if err := cfg.LoadRules(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
