package app

import (
	"math"

	"go-scanner-defense/internal/system"
	"go-scanner-defense/internal/types"
)

// TowerView is a read-only copy of a tower for presentation.
type TowerView struct {
	ID         types.EntityID `json:"id"`
	Kind       string         `json:"kind"`
	Axis       int            `json:"axis"`
	Slot       int            `json:"slot"`
	Level      int            `json:"level"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Range      float64        `json:"range"`
	Refundable bool           `json:"refundable"`
}

// EnemyView is a read-only copy of an enemy for presentation.
type EnemyView struct {
	ID         types.EntityID `json:"id"`
	Type       string         `json:"type"`
	State      string         `json:"state"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Z          float64        `json:"z"`
	Health     float64        `json:"health"`
	MaxHealth  float64        `json:"max_health"`
	Slowed     bool           `json:"slowed"`
	Flash      float64        `json:"flash,omitempty"`
	Travelled  float64        `json:"travelled"`
	Vulnerable bool           `json:"vulnerable"`
}

// ProjectileView is a read-only copy of a projectile for presentation.
type ProjectileView struct {
	ID types.EntityID `json:"id"`
	X  float64        `json:"x"`
	Y  float64        `json:"y"`
}

// Snapshot is the full presentation state of a session at one instant.
type Snapshot struct {
	SessionID   string           `json:"session_id"`
	Level       string           `json:"level"`
	State       string           `json:"state"`
	Heading     float64          `json:"heading"`
	Rotation    float64          `json:"rotation"` // progress through the current rotation, [0, 1)
	Measures    int              `json:"measures"`
	Running     bool             `json:"running"`
	NextSector  int              `json:"next_sector"`
	AxisCount   int              `json:"axis_count"`
	MinAxis     float64          `json:"min_axis"`
	MaxAxis     float64          `json:"max_axis"`
	Wave        int              `json:"wave"` // 1-based number of the last activated wave
	WaveCount   int              `json:"wave_count"`
	Cleared     int              `json:"cleared"`
	Money       int              `json:"money"`
	Points      int              `json:"points"`
	Health      int              `json:"health"`
	TimeScale   float64          `json:"time_scale"`
	Towers      []TowerView      `json:"towers"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
}

// Snapshot copies the state drivers need to draw a frame.
func (s *GameSession) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.ID,
		Level:      s.Level.Name,
		State:      s.ECS.GameState.String(),
		Heading:    s.Clock.Heading(),
		Rotation:   math.Mod(s.Clock.Travelled(), 360) / 360,
		Measures:   s.Level.MeasuresPerRotation,
		Running:    s.Clock.Running(),
		NextSector: s.Clock.NextSector(),
		AxisCount:  s.Axes.AxisCount(),
		MinAxis:    s.Level.MinAxisLength,
		MaxAxis:    s.Level.MaxAxisLength,
		Wave:       s.nextWave,
		WaveCount:  len(s.Level.Scripts),
		Cleared:    len(s.cleared),
		Money:      s.ECS.Player.Money,
		Points:     s.ECS.Player.Points,
		Health:     s.ECS.Player.Health,
		TimeScale:  s.timeScale,
	}

	for _, id := range s.ECS.TowerIDs() {
		t := s.ECS.Towers[id]
		v := TowerView{ID: id, Kind: string(t.Kind), Axis: t.Axis, Slot: t.Slot, Level: t.Level, Refundable: t.Refundable}
		if pos, ok := s.ECS.Positions[id]; ok {
			v.X, v.Y = pos.X, pos.Y
		}
		if st, ok := system.StatsFor(s.Library, t); ok {
			v.Range = st.Range
		}
		snap.Towers = append(snap.Towers, v)
	}

	for _, id := range s.ECS.EnemyIDs() {
		e := s.ECS.Enemies[id]
		v := EnemyView{
			ID:         id,
			Type:       e.Type,
			State:      e.State.String(),
			Travelled:  e.TravelDistance,
			Vulnerable: e.Vulnerable(),
		}
		if pos, ok := s.ECS.Positions[id]; ok {
			v.X, v.Y, v.Z = pos.X, pos.Y, pos.Z
		}
		if h, ok := s.ECS.Healths[id]; ok {
			v.Health, v.MaxHealth = h.Value, h.Initial
		}
		_, v.Slowed = s.ECS.SlowEffects[id]
		if p, ok := s.VisualEffectSystem.FlashProgress(id); ok {
			v.Flash = 1 - p
		}
		snap.Enemies = append(snap.Enemies, v)
	}

	for _, id := range s.ECS.ProjectileIDs() {
		if pos, ok := s.ECS.Positions[id]; ok {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: id, X: pos.X, Y: pos.Y})
		}
	}
	return snap
}
