// Package boardconfig loads and validates the operational profile a board
// runs with: the birth seed, washout length, training window, pruning
// threshold and whether the hive peer-sync layer is active. None of this
// touches the compile-time reservoir dimensions (ReservoirSize, InputSize,
// OutputSize, SparsityFactor) — those stay fixed by the build tag chosen
// at compile time, never by a config file.
package boardconfig

import "fmt"

// Profile is the YAML-loadable operational configuration for one board.
type Profile struct {
	Seed           uint32  `yaml:"seed"`
	Washout        int     `yaml:"washout"`
	TrainWindow    int     `yaml:"train_window"`
	PruneThreshold float64 `yaml:"prune_threshold"`
	HiveEnabled    bool    `yaml:"hive_enabled"`
}

// Default returns a conservative, always-valid profile: clock-derived
// seed, a 50-sample washout, a 300-sample training window, light pruning
// and the hive disabled.
func Default() *Profile {
	return &Profile{
		Seed:           0,
		Washout:        50,
		TrainWindow:    300,
		PruneThreshold: 0.1,
		HiveEnabled:    false,
	}
}

// Validate checks the invariants Train and Prune rely on: a training
// window that actually exceeds the washout, and a non-negative prune
// threshold.
func (p *Profile) Validate() error {
	if p.Washout < 0 {
		return fmt.Errorf("boardconfig: washout must be >= 0, got %d", p.Washout)
	}
	if p.TrainWindow <= p.Washout {
		return fmt.Errorf("boardconfig: train_window (%d) must exceed washout (%d)", p.TrainWindow, p.Washout)
	}
	if p.PruneThreshold < 0 {
		return fmt.Errorf("boardconfig: prune_threshold must be >= 0, got %v", p.PruneThreshold)
	}
	return nil
}
