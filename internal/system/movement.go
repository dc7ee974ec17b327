// internal/system/movement.go
package system

import (
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

const waypointEpsilon = 1e-9

// MovementSystem двигает врагов вдоль их путей. Steps start on move ticks
// (one per measure) and are interpolated every frame.
type MovementSystem struct {
	ecs                 *entity.ECS
	moveMeasureFraction float64
	difficultyPerWave   float64
}

func NewMovementSystem(ecs *entity.ECS, moveMeasureFraction, difficultyPerWave float64) *MovementSystem {
	return &MovementSystem{
		ecs:                 ecs,
		moveMeasureFraction: moveMeasureFraction,
		difficultyPerWave:   difficultyPerWave,
	}
}

// SpeedScale is the step multiplier of enemies spawned in the given wave.
func (s *MovementSystem) SpeedScale(waveNumber int) float64 {
	return 1 + s.difficultyPerWave*float64(waveNumber)
}

// OnMoveTick starts a new move segment for every live enemy. A segment that
// is still in flight is finished first so no distance is lost.
func (s *MovementSystem) OnMoveTick(secondsPerMeasure float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		path := s.ecs.Paths[id]
		if !enemy.Alive() || enemy.ReachedBase || path == nil {
			continue
		}
		if m, ok := s.ecs.Motions[id]; ok {
			s.setTravel(id, enemy, path, m.To)
			delete(s.ecs.Motions, id)
		}

		step, ease := s.nextStep(enemy)
		if slow, ok := s.ecs.SlowEffects[id]; ok && slow.Ticks > 0 {
			step *= slow.SlowFactor
			slow.Ticks--
			if slow.Ticks <= 0 {
				delete(s.ecs.SlowEffects, id)
			}
		}
		to := math.Min(enemy.TravelDistance+step, path.Length())
		s.ecs.Motions[id] = &component.Motion{
			From:     enemy.TravelDistance,
			To:       to,
			Duration: s.moveMeasureFraction * secondsPerMeasure,
			Ease:     ease,
		}
		if enemy.State == component.EnemySpawned {
			enemy.State = component.EnemyTraveling
		}
	}
}

// nextStep picks the nominal step length and easing for the next tick.
// Leaving the spawn ramp mid-step blends the rest of the step at the
// surface speed.
func (s *MovementSystem) nextStep(enemy *component.Enemy) (float64, component.Ease) {
	nominal := enemy.MoveStep * enemy.SpeedScale
	remaining := enemy.SpawnLength - enemy.TravelDistance
	if remaining <= waypointEpsilon {
		return nominal, component.EaseCubicIn
	}
	if enemy.SpawnStep <= 0 || remaining < enemy.SpawnStep {
		fraction := 0.0
		if enemy.SpawnStep > 0 {
			fraction = remaining / enemy.SpawnStep
		}
		return remaining + (1-fraction)*nominal, component.EaseCubicOut
	}
	return enemy.SpawnStep, component.EaseCubicOut
}

// Update interpolates in-flight segments and returns the enemies that
// reached the end of their path during this frame.
func (s *MovementSystem) Update(deltaTime float64) []types.EntityID {
	var reached []types.EntityID
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		m, ok := s.ecs.Motions[id]
		if !ok {
			continue
		}
		path := s.ecs.Paths[id]
		if !enemy.Alive() || path == nil {
			delete(s.ecs.Motions, id)
			continue
		}
		m.Elapsed += deltaTime
		t := 1.0
		if m.Duration > 0 {
			t = m.Elapsed / m.Duration
		}
		s.setTravel(id, enemy, path, m.From+(m.To-m.From)*easeValue(m.Ease, t))
		if t >= 1 {
			delete(s.ecs.Motions, id)
		}
		if !enemy.ReachedBase && enemy.TravelDistance >= path.Length()-waypointEpsilon {
			enemy.ReachedBase = true
			delete(s.ecs.Motions, id)
			reached = append(reached, id)
		}
	}
	return reached
}

// Place puts an enemy at its current travel distance without moving it.
func (s *MovementSystem) Place(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	path := s.ecs.Paths[id]
	if !ok || path == nil {
		return
	}
	s.setTravel(id, enemy, path, enemy.TravelDistance)
}

// setTravel moves the enemy forward to distance d. Travel never decreases.
func (s *MovementSystem) setTravel(id types.EntityID, enemy *component.Enemy, path *component.Path, d float64) {
	if d > enemy.TravelDistance {
		enemy.TravelDistance = math.Min(d, path.Length())
	}
	pos, reachedIndex := pointAlong(path, enemy.TravelDistance)
	if p, ok := s.ecs.Positions[id]; ok {
		*p = pos
	} else {
		s.ecs.Positions[id] = &pos
	}
	if reachedIndex > enemy.NextWaypoint {
		enemy.NextWaypoint = reachedIndex
	}
	if enemy.NextWaypoint > 0 && enemy.Alive() {
		enemy.State = component.EnemyVulnerable
	}
}

// pointAlong returns the point at distance d and the index of the last path
// point already reached.
func pointAlong(path *component.Path, d float64) (component.Position, int) {
	pts := path.Points
	if len(pts) == 0 {
		return component.Position{}, 0
	}
	reached := 0
	for i := 1; i < len(pts); i++ {
		if path.Cumulative[i] <= d+waypointEpsilon {
			reached = i
		}
	}
	if reached == len(pts)-1 {
		return pts[reached], reached
	}
	segStart, segEnd := path.Cumulative[reached], path.Cumulative[reached+1]
	t := 0.0
	if segEnd > segStart {
		t = (d - segStart) / (segEnd - segStart)
	}
	a, b := pts[reached], pts[reached+1]
	return component.Position{
		X: utils.Lerp(a.X, b.X, t),
		Y: utils.Lerp(a.Y, b.Y, t),
		Z: utils.Lerp(a.Z, b.Z, t),
	}, reached
}

// NewPath builds a path with cumulative lengths from its points.
func NewPath(points []component.Position) *component.Path {
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		cum[i] = cum[i-1] + math.Sqrt((b.X-a.X)*(b.X-a.X)+(b.Y-a.Y)*(b.Y-a.Y)+(b.Z-a.Z)*(b.Z-a.Z))
	}
	return &component.Path{Points: points, Cumulative: cum}
}

func easeValue(e component.Ease, t float64) float64 {
	switch e {
	case component.EaseCubicIn:
		return utils.EaseInCubic(t)
	case component.EaseCubicOut:
		return utils.EaseOutCubic(t)
	}
	return utils.Clamp(t, 0, 1)
}
