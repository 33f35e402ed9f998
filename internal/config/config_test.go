package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StoragePath != "datastore.json" || cfg.CommandPrefix != "!" || cfg.DailyCooldown != 24*time.Hour || cfg.RatePerMinute != 20 {
		t.Errorf("defaults = %+v", cfg)
	}
	if err := cfg.RequireDiscord(); err == nil {
		t.Error("RequireDiscord should fail without a token")
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"DISCORD_TOKEN":  "secret",
		"COMMAND_PREFIX": "?",
		"DAILY_COOLDOWN": "90m",
		"DEV_IDS":        "1,2",
	}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CommandPrefix != "?" || cfg.DailyCooldown != 90*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.IsDeveloper("2") || cfg.IsDeveloper("3") {
		t.Errorf("DeveloperIDs = %v", cfg.DeveloperIDs)
	}
	if err := cfg.RequireDiscord(); err != nil {
		t.Error(err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"COMMAND_PREFIX":  "a b",
		"DAILY_COOLDOWN":  "-1h",
		"RATE_PER_MINUTE": "0",
	}
	for key, value := range tests {
		if _, err := Parse(env.Options{Environment: map[string]string{key: value}}); err == nil {
			t.Errorf("%s=%q should be rejected", key, value)
		}
	}
}

func TestCategoryWeight(t *testing.T) {
	if CategoryWeight(CategoryInformation) >= CategoryWeight(CategoryGameplay) {
		t.Error("information must sort before gameplay")
	}
	if CategoryWeight("unknown") <= CategoryWeight(CategoryMaintenance) {
		t.Error("unknown categories must sort last")
	}
}
