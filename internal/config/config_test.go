package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v; want nil", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}
	if cfg.Rates.DropChanceMultiplier != 1.0 {
		t.Errorf("DropChanceMultiplier = %v; want 1.0", cfg.Rates.DropChanceMultiplier)
	}
	if cfg.Rates.DefaultLootTable != "default" {
		t.Errorf("DefaultLootTable = %q; want %q", cfg.Rates.DefaultLootTable, "default")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server.yaml")
	body := []byte(`
log_level: debug
rates:
  drop_chance_multiplier: 3.0
  drop_amount_multiplier: 2.0
  scatter_radius: 100
  default_loot_table: common
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v; want nil", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
	if cfg.Rates.DropChanceMultiplier != 3.0 {
		t.Errorf("DropChanceMultiplier = %v; want 3.0", cfg.Rates.DropChanceMultiplier)
	}
	if cfg.Rates.ScatterRadius != 100 {
		t.Errorf("ScatterRadius = %d; want 100", cfg.Rates.ScatterRadius)
	}
	if cfg.Rates.DefaultLootTable != "common" {
		t.Errorf("DefaultLootTable = %q; want %q", cfg.Rates.DefaultLootTable, "common")
	}
}

func TestLoad_MalformedYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rates: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil; want parse error")
	}
}
