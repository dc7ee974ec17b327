// internal/defs/enemies.go
package defs

import "fmt"

// EnemyType is the size letter used by spawn scripts.
type EnemyType byte

const (
	EnemySmall EnemyType = 's'
	EnemyLarge EnemyType = 'l'
)

func (t EnemyType) String() string {
	return string(rune(t))
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type                   string  `yaml:"type"`
	Name                   string  `yaml:"name"`
	Health                 float64 `yaml:"health"`
	MoneyReward            int     `yaml:"money_reward"`
	PointValue             int     `yaml:"point_value"`
	DistancePerMove        float64 `yaml:"distance_per_move"`
	DistancePerMoveOnSpawn float64 `yaml:"distance_per_move_on_spawn"`
	SpawnDepth             float64 `yaml:"spawn_depth"`
	Regenerates            bool    `yaml:"regenerates"`
	RegenerateMeasure      float64 `yaml:"regenerate_measure"` // measures to heal from 0 to full
	RegenerateDelay        int     `yaml:"regenerate_delay"`   // move ticks without damage before healing
}

// EnemyType returns the script letter for this definition.
func (d EnemyDefinition) EnemyType() EnemyType {
	if len(d.Type) == 0 {
		return 0
	}
	return EnemyType(d.Type[0])
}

func (d EnemyDefinition) Validate() error {
	if len(d.Type) != 1 || (d.EnemyType() != EnemySmall && d.EnemyType() != EnemyLarge) {
		return fmt.Errorf("enemy %q: type must be \"s\" or \"l\"", d.Type)
	}
	if d.Health <= 0 {
		return fmt.Errorf("enemy %q: health must be positive", d.Type)
	}
	if d.DistancePerMove <= 0 || d.DistancePerMoveOnSpawn <= 0 {
		return fmt.Errorf("enemy %q: move distances must be positive", d.Type)
	}
	if d.SpawnDepth < 0 {
		return fmt.Errorf("enemy %q: negative spawn_depth", d.Type)
	}
	if d.Regenerates && d.RegenerateMeasure <= 0 {
		return fmt.Errorf("enemy %q: regenerate_measure must be positive", d.Type)
	}
	return nil
}
