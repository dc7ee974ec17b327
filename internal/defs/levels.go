// internal/defs/levels.go
package defs

import (
	"fmt"
	"strings"
)

// BurstPolicy decides what an in-flight burst does while the scanner is stopped.
type BurstPolicy string

const (
	BurstComplete BurstPolicy = "complete" // shots already committed keep firing
	BurstPause    BurstPolicy = "pause"    // the burst waits for the scanner to run again
)

// Point is a ground-plane position in level data.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TempoDefinition describes where the rotation period comes from: either an
// audio clip and the number of measures it holds, or a plain BPM.
type TempoDefinition struct {
	Clip            string  `yaml:"clip,omitempty"`
	ClipMeasures    int     `yaml:"clip_measures,omitempty"`
	BPM             float64 `yaml:"bpm,omitempty"`
	BeatsPerMeasure int     `yaml:"beats_per_measure,omitempty"`
}

// LevelDefinition is a playable level. Waves are parsed into Scripts at load.
type LevelDefinition struct {
	Name                string             `yaml:"name"`
	AxisCount           int                `yaml:"axis_count"`
	MeasuresPerRotation int                `yaml:"measures_per_rotation"`
	Tempo               TempoDefinition    `yaml:"tempo"`
	MinAxisLength       float64            `yaml:"min_axis_length"`
	MaxAxisLength       float64            `yaml:"max_axis_length"`
	SlotsPerAxis        int                `yaml:"slots_per_axis"`
	SpawnPoints         map[string][]Point `yaml:"spawn_points"`
	StartMoney          int                `yaml:"start_money"`
	PlayerHealth        int                `yaml:"player_health"`
	StopAfterRotations  int                `yaml:"stop_after_rotations"`
	BurstPolicy         BurstPolicy        `yaml:"burst_policy"`
	Seed                int64              `yaml:"seed"`
	Waves               []string           `yaml:"waves"`

	Scripts []WaveScript `yaml:"-"`
}

// SpawnPath returns the waypoints enemies of the given sector follow. The
// last waypoint is the home base.
func (l *LevelDefinition) SpawnPath(sector byte) ([]Point, bool) {
	path, ok := l.SpawnPoints[string(sector)]
	return path, ok && len(path) > 0
}

// SlotRadius is the distance from the center of build slot i on any axis.
func (l *LevelDefinition) SlotRadius(slot int) float64 {
	if l.SlotsPerAxis <= 1 {
		return l.MinAxisLength
	}
	step := (l.MaxAxisLength - l.MinAxisLength) / float64(l.SlotsPerAxis-1)
	return l.MinAxisLength + step*float64(slot)
}

func (l *LevelDefinition) validate(lib *Library) error {
	if l.AxisCount < 1 {
		return fmt.Errorf("level %q: axis_count must be at least 1", l.Name)
	}
	if l.MeasuresPerRotation < 1 {
		return fmt.Errorf("level %q: measures_per_rotation must be at least 1", l.Name)
	}
	if l.MinAxisLength < 0 || l.MaxAxisLength < l.MinAxisLength {
		return fmt.Errorf("level %q: bad axis length range [%v, %v]", l.Name, l.MinAxisLength, l.MaxAxisLength)
	}
	if l.SlotsPerAxis < 1 {
		return fmt.Errorf("level %q: slots_per_axis must be at least 1", l.Name)
	}
	if l.PlayerHealth < 1 {
		return fmt.Errorf("level %q: player_health must be at least 1", l.Name)
	}
	switch l.BurstPolicy {
	case BurstComplete, BurstPause:
	default:
		return fmt.Errorf("level %q: unknown burst_policy %q", l.Name, l.BurstPolicy)
	}
	for wi, script := range l.Scripts {
		for gi, group := range script.Groups {
			for _, tok := range group {
				if tok.Kind != TokenSpawn {
					continue
				}
				if _, ok := l.SpawnPath(tok.Sector); !ok {
					return &ScriptError{Wave: wi, Group: gi, Token: tok.String(), Err: fmt.Errorf("no spawn points for sector %c", tok.Sector)}
				}
				if _, ok := lib.Enemies[tok.Enemy]; !ok {
					return &ScriptError{Wave: wi, Group: gi, Token: tok.String(), Err: fmt.Errorf("no enemy definition %q", tok.Enemy)}
				}
			}
		}
	}
	return nil
}

func (l *LevelDefinition) applyDefaults(axisCount, measures, slots int, minLen, maxLen float64) {
	if l.AxisCount == 0 {
		l.AxisCount = axisCount
	}
	if l.MeasuresPerRotation == 0 {
		l.MeasuresPerRotation = measures
	}
	if l.SlotsPerAxis == 0 {
		l.SlotsPerAxis = slots
	}
	if l.MinAxisLength == 0 && l.MaxAxisLength == 0 {
		l.MinAxisLength, l.MaxAxisLength = minLen, maxLen
	}
	if l.BurstPolicy == "" {
		l.BurstPolicy = BurstComplete
	}
	l.BurstPolicy = BurstPolicy(strings.ToLower(string(l.BurstPolicy)))
}
