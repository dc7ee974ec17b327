// internal/defs/towers.go
package defs

import "fmt"

// TowerKind is the tagged variant of a tower. Behaviour per kind lives in
// system/tower_kinds.go.
type TowerKind string

const (
	KindPulse  TowerKind = "pulse"  // instant damage to everything in range
	KindFrost  TowerKind = "frost"  // instant damage + slow
	KindSniper TowerKind = "sniper" // single projectile at the lead enemy
	KindMortar TowerKind = "mortar" // projectile with splash
	KindBurst  TowerKind = "burst"  // several hitscan shots over a few ticks
)

// AllKinds lists kinds in the order drivers present them.
var AllKinds = []TowerKind{KindPulse, KindFrost, KindSniper, KindMortar, KindBurst}

func (k TowerKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// TowerDefinition holds all the static data for a specific kind of tower.
// Per-level slices are indexed by Tower.Level.
type TowerDefinition struct {
	Kind           TowerKind `yaml:"kind"`
	Name           string    `yaml:"name"`
	Cost           int       `yaml:"cost"`
	UpgradeCost    []int     `yaml:"upgrade_cost"`
	AttackPower    []float64 `yaml:"attack_power"`
	AttackRange    []float64 `yaml:"attack_range"`
	TravelDuration float64   `yaml:"travel_duration,omitempty"`
	SplashRadius   []float64 `yaml:"splash_radius,omitempty"`
	Shots          int       `yaml:"shots,omitempty"`
	ShotInterval   float64   `yaml:"shot_interval,omitempty"`
}

// MaxLevel is the number of levels; valid levels are 0..MaxLevel()-1.
func (d TowerDefinition) MaxLevel() int {
	return len(d.AttackPower)
}

// Validate checks that the per-level tables agree with each other.
func (d TowerDefinition) Validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("tower %q: unknown kind", d.Kind)
	}
	if d.Cost <= 0 {
		return fmt.Errorf("tower %q: cost must be positive", d.Kind)
	}
	levels := d.MaxLevel()
	if levels == 0 {
		return fmt.Errorf("tower %q: no attack_power levels", d.Kind)
	}
	if len(d.AttackRange) != levels {
		return fmt.Errorf("tower %q: attack_range has %d levels, want %d", d.Kind, len(d.AttackRange), levels)
	}
	if len(d.UpgradeCost) != levels-1 {
		return fmt.Errorf("tower %q: upgrade_cost has %d entries, want %d", d.Kind, len(d.UpgradeCost), levels-1)
	}
	if len(d.SplashRadius) != 0 && len(d.SplashRadius) != levels {
		return fmt.Errorf("tower %q: splash_radius has %d levels, want %d", d.Kind, len(d.SplashRadius), levels)
	}
	if (d.Kind == KindSniper || d.Kind == KindMortar) && d.TravelDuration < 0 {
		return fmt.Errorf("tower %q: negative travel_duration", d.Kind)
	}
	return nil
}
