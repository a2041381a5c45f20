// Package config defines league configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
	"fmt"
)

// Config contains everything needed to stand up a league: the roster
// schema, the participating teams, the draft length, and the scoring
// point values.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Preset selects the position code set: "espn" or "yahoo".
	Preset string `koanf:"preset"`

	// SlotCounts maps each position code to its slot allotment. The key
	// set must exactly match the preset's canonical position set.
	SlotCounts map[string]int `koanf:"slot_counts"`

	// TeamNames lists the participating teams in draft order.
	TeamNames []string `koanf:"team_names"`

	// Rounds is the number of draft rounds.
	Rounds int `koanf:"rounds"`

	// Scoring maps category -> statistic -> point value. Empty means the
	// standard default values.
	Scoring map[string]map[string]float64 `koanf:"scoring"`
}

// New creates a Config with defaults: an ESPN-style ten-team league with a
// standard lineup and a fifteen-round draft. Context is accepted first to
// satisfy the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	names := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		names = append(names, fmt.Sprintf("Team %d", i))
	}
	return &Config{
		LogLevel: "info",
		Preset:   "espn",
		SlotCounts: map[string]int{
			"QB": 1, "RB": 2, "WR": 2, "TE": 1,
			"FLEX": 1, "D/ST": 1, "K": 1, "BN": 6, "IR": 1,
		},
		TeamNames: names,
		Rounds:    15,
	}
}
