package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

type fixture struct {
	ecs         *entity.ECS
	events      *event.Queue
	lib         *defs.Library
	player      *PlayerSystem
	health      *HealthSystem
	status      *StatusEffectSystem
	movement    *MovementSystem
	axes        *AxisRegistry
	targeting   *TargetingSystem
	processes   *ProcessRunner
	combat      *CombatSystem
	projectiles *ProjectileSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := assets.DefaultLibrary()
	require.NoError(t, err)

	f := &fixture{
		ecs:       entity.NewECS(),
		events:    event.NewQueue(),
		lib:       lib,
		axes:      NewAxisRegistry(8, config.MinAxisLength, config.MaxAxisLength),
		processes: NewProcessRunner(),
	}
	f.ecs.Player.Money = 100
	f.ecs.Player.Health = 10
	f.player = NewPlayerSystem(f.ecs)
	f.health = NewHealthSystem(f.ecs, f.player, f.events, config.DeathEffectDuration, config.BaseDamagePerHit)
	f.status = NewStatusEffectSystem(f.ecs, config.SlowFactor, config.SlowDurationTicks)
	f.movement = NewMovementSystem(f.ecs, config.MoveMeasureFraction, config.WaveDifficultyMul)
	f.targeting = NewTargetingSystem(f.ecs, lib)
	f.combat = NewCombatSystem(f.ecs, lib, f.axes, f.targeting, f.health, f.status, f.events, f.processes,
		defs.BurstComplete, config.ProjectileTimeoutFactor)
	f.projectiles = NewProjectileSystem(f.ecs, f.health, config.ProjectileContactRadius)
	return f
}

// addEnemy places a vulnerable enemy with no path at (x, y).
func (f *fixture) addEnemy(x, y, hp, travel float64) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Healths[id] = &component.Health{Value: hp, Initial: hp}
	f.ecs.Enemies[id] = &component.Enemy{
		Type:           "s",
		Sector:         'A',
		State:          component.EnemyVulnerable,
		TravelDistance: travel,
		NextWaypoint:   1,
		MoneyReward:    5,
		PointValue:     10,
		SpeedScale:     1,
		MoveStep:       1,
	}
	return id
}

// addWalker places an enemy at the start of a path that climbs one unit out
// of the ground and then walks ten units east.
func (f *fixture) addWalker(spawnStep float64) types.EntityID {
	id := f.ecs.NewEntity()
	path := NewPath([]component.Position{{Z: -1}, {}, {X: 10}})
	f.ecs.Paths[id] = path
	f.ecs.Positions[id] = &component.Position{Z: -1}
	f.ecs.Healths[id] = &component.Health{Value: 20, Initial: 20}
	f.ecs.Enemies[id] = &component.Enemy{
		Type:        "s",
		Sector:      'A',
		State:       component.EnemySpawned,
		MoneyReward: 5,
		PointValue:  10,
		SpeedScale:  1,
		MoveStep:    1,
		SpawnStep:   spawnStep,
		SpawnLength: 1,
	}
	return id
}

// addTower builds a tower of kind at (x, y) on the nearest axis.
func (f *fixture) addTower(kind defs.TowerKind, x, y float64) types.EntityID {
	id := f.ecs.NewEntity()
	pos := component.Position{X: x, Y: y}
	axis := f.axes.ClosestAxis(pos)
	f.ecs.Positions[id] = &pos
	f.ecs.Towers[id] = &component.Tower{Kind: kind, Axis: axis, Slot: -1, IsBuilt: true}
	f.axes.AddTower(axis, id)
	return id
}

func (f *fixture) drain() []event.Event {
	rec := &recorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec)
	f.events.Drain(d)
	return rec.events
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func eventsOfType(events []event.Event, typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
