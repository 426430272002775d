package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rates holds server rate multipliers and loot tuning.
type Rates struct {
	DropChanceMultiplier float64 `yaml:"drop_chance_multiplier"`
	DropAmountMultiplier float64 `yaml:"drop_amount_multiplier"`
	ScatterRadius        int32   `yaml:"scatter_radius"` // map units
	DefaultLootTable     string  `yaml:"default_loot_table"`
}

// DefaultRates returns Rates with x1 multipliers and 60-unit scatter.
func DefaultRates() Rates {
	return Rates{
		DropChanceMultiplier: 1.0,
		DropAmountMultiplier: 1.0,
		ScatterRadius:        60,
		DefaultLootTable:     "default",
	}
}

// Server holds all configuration for the content server.
type Server struct {
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Rates
	Rates Rates `yaml:"rates"`
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel: "info",
		Rates:    DefaultRates(),
	}
}

// Load loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
