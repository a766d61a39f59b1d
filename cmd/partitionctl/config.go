package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings read from .partitionctl.toml and environment
// variables (PARTITIONCTL_*).
type Config struct {
	// Elements is the element set to partition. If empty, Count random
	// UUIDs are generated instead.
	Elements []string `mapstructure:"elements"`
	// Count is how many UUIDs to generate when Elements is empty.
	Count int `mapstructure:"count"`
	// Mode selects the enumeration: "all", "exactly:k", "atmost:k",
	// "between:kmin,kmax", or "in:k1,k2,...".
	Mode string `mapstructure:"mode"`
	// Reverse selects the reverse-lexicographic counterpart of Mode.
	Reverse bool `mapstructure:"reverse"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file or environment.
func Load() (Config, error) {
	viper.SetDefault("elements", []string{})
	viper.SetDefault("count", 4)
	viper.SetDefault("mode", "all")
	viper.SetDefault("reverse", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
