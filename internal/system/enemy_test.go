package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/event"
)

// One measure is 2s, so a move segment lasts 1s.
const testSecondsPerMeasure = 2.0

func TestEnemyLeavesSpawnRampAndBecomesVulnerable(t *testing.T) {
	f := newFixture(t)
	id := f.addWalker(0.5)
	enemy := f.ecs.Enemies[id]

	f.movement.OnMoveTick(testSecondsPerMeasure)
	assert.Equal(t, component.EnemyTraveling, enemy.State)
	f.movement.Update(1)
	assert.InDelta(t, 0.5, enemy.TravelDistance, 1e-9)
	assert.InDelta(t, -0.5, f.ecs.Positions[id].Z, 1e-9)
	assert.False(t, enemy.Vulnerable())

	assert.False(t, f.health.TakeDamage(id, 5))
	assert.Equal(t, 20.0, f.ecs.Healths[id].Value)

	f.movement.OnMoveTick(testSecondsPerMeasure)
	f.movement.Update(1)
	assert.InDelta(t, 1.0, enemy.TravelDistance, 1e-9)
	assert.Equal(t, 1, enemy.NextWaypoint)
	assert.True(t, enemy.Vulnerable())

	// Surface travel eases in: half the segment covers an eighth of the step.
	f.movement.OnMoveTick(testSecondsPerMeasure)
	f.movement.Update(0.5)
	assert.InDelta(t, 1.125, enemy.TravelDistance, 1e-9)
	assert.InDelta(t, 0.125, f.ecs.Positions[id].X, 1e-9)
}

func TestEnemyRampStepBlendsIntoSurfaceSpeed(t *testing.T) {
	f := newFixture(t)
	id := f.addWalker(0.6)
	enemy := f.ecs.Enemies[id]

	f.movement.OnMoveTick(testSecondsPerMeasure)
	f.movement.Update(1)
	f.movement.OnMoveTick(testSecondsPerMeasure)
	f.movement.Update(1)
	// 0.4 left on the ramp, then a third of the surface step.
	assert.InDelta(t, 1.0+1.0/3.0, enemy.TravelDistance, 1e-9)
	assert.True(t, enemy.Vulnerable())
}

func TestMoveTickFinishesUnfinishedSegment(t *testing.T) {
	f := newFixture(t)
	id := f.addWalker(0.5)
	enemy := f.ecs.Enemies[id]

	f.movement.OnMoveTick(testSecondsPerMeasure)
	f.movement.Update(0.1)
	f.movement.OnMoveTick(testSecondsPerMeasure)
	assert.InDelta(t, 0.5, enemy.TravelDistance, 1e-9)
	assert.Equal(t, 0.5, f.ecs.Motions[id].From)
}

func TestTravelDistanceNeverDecreases(t *testing.T) {
	f := newFixture(t)
	id := f.addWalker(0.5)
	enemy := f.ecs.Enemies[id]

	last := 0.0
	for i := 0; i < 30; i++ {
		f.movement.OnMoveTick(testSecondsPerMeasure)
		for j := 0; j < 7; j++ {
			f.movement.Update(0.2)
			assert.GreaterOrEqual(t, enemy.TravelDistance, last)
			last = enemy.TravelDistance
		}
	}
}

func TestSlowHalvesStepsAndRefreshes(t *testing.T) {
	f := newFixture(t)
	id := f.addEnemy(0, 0, 20, 1)
	f.ecs.Paths[id] = NewPath([]component.Position{{Z: -1}, {}, {X: 10}})
	f.movement.Place(id)

	require.True(t, f.status.Slow(id))
	f.status.Slow(id)
	assert.Equal(t, config.SlowDurationTicks, f.ecs.SlowEffects[id].Ticks)

	f.movement.OnMoveTick(testSecondsPerMeasure)
	assert.InDelta(t, 1+config.SlowFactor, f.ecs.Motions[id].To, 1e-9)
	assert.Equal(t, config.SlowDurationTicks-1, f.ecs.SlowEffects[id].Ticks)

	f.status.Slow(id)
	assert.Equal(t, config.SlowDurationTicks, f.ecs.SlowEffects[id].Ticks)

	for i := 0; i < config.SlowDurationTicks; i++ {
		f.movement.OnMoveTick(testSecondsPerMeasure)
	}
	_, slowed := f.ecs.SlowEffects[id]
	assert.False(t, slowed)
}

func TestEnemyReachesBase(t *testing.T) {
	f := newFixture(t)
	id := f.addWalker(0.5)
	enemy := f.ecs.Enemies[id]
	enemy.TravelDistance = 10.5
	f.movement.Place(id)

	f.movement.OnMoveTick(testSecondsPerMeasure)
	assert.Empty(t, f.movement.Update(0.5))
	reached := f.movement.Update(0.5)
	require.Equal(t, 1, len(reached))
	assert.Equal(t, id, reached[0])
	assert.InDelta(t, 11.0, enemy.TravelDistance, 1e-9)
	assert.Empty(t, f.movement.Update(0.5))
}

func TestTakeDamageKillPaysReward(t *testing.T) {
	f := newFixture(t)
	id := f.addEnemy(3, 0, 10, 2)

	assert.False(t, f.health.TakeDamage(id, 4))
	assert.Equal(t, 6.0, f.ecs.Healths[id].Value)
	assert.True(t, f.health.TakeDamage(id, 7))
	assert.Equal(t, 0.0, f.ecs.Healths[id].Value)
	assert.Equal(t, component.EnemyDead, f.ecs.Enemies[id].State)

	assert.False(t, f.health.TakeDamage(id, 7), "dead enemies take no damage")
	assert.Equal(t, 105, f.ecs.Player.Money)
	assert.Equal(t, 10, f.ecs.Player.Points)

	died := eventsOfType(f.drain(), event.EnemyDied)
	require.Len(t, died, 1)
	assert.Equal(t, event.EnemyDiedData{ID: id, X: 3, Y: 0, Reward: 5, Points: 10}, died[0].Data)

	f.health.Update(config.DeathEffectDuration / 2)
	_, exists := f.ecs.Enemies[id]
	assert.True(t, exists, "the death effect keeps the entity around")
	f.health.Update(config.DeathEffectDuration)
	_, exists = f.ecs.Enemies[id]
	assert.False(t, exists)
}

func TestSelfDestructPenalisesPlayer(t *testing.T) {
	f := newFixture(t)
	id := f.addEnemy(0, 0, 10, 11)
	f.ecs.Player.Points = 50

	f.health.SelfDestruct(id)
	assert.Equal(t, 40, f.ecs.Player.Points)
	assert.Equal(t, 100, f.ecs.Player.Money)
	assert.Equal(t, 9, f.ecs.Player.Health)
	assert.False(t, f.ecs.Enemies[id].Killed)
	assert.False(t, f.ecs.Enemies[id].Alive())

	f.health.SelfDestruct(id)
	assert.Equal(t, 9, f.ecs.Player.Health, "a dead enemy cannot hit the base twice")

	events := f.drain()
	assert.Len(t, eventsOfType(events, event.EnemyReachedBase), 1)
	damaged := eventsOfType(events, event.PlayerDamaged)
	require.Len(t, damaged, 1)
	assert.Equal(t, event.PlayerDamagedData{Amount: 1, Health: 9}, damaged[0].Data)
}

func TestRegenerationWaitsForDelay(t *testing.T) {
	f := newFixture(t)
	id := f.addEnemy(0, 0, 80, 2)
	// Full heal over 8 measures of 2s: 5 hp per second.
	f.ecs.Regenerations[id] = &component.Regeneration{RatePerSecond: 80 / (8 * testSecondsPerMeasure), DelayTicks: 2}

	f.health.TakeDamage(id, 30)
	f.status.Update(1)
	assert.Equal(t, 50.0, f.ecs.Healths[id].Value, "no healing right after a hit")

	f.status.OnMoveTick()
	f.status.Update(1)
	assert.Equal(t, 50.0, f.ecs.Healths[id].Value)

	f.status.OnMoveTick()
	f.status.Update(1)
	assert.InDelta(t, 55.0, f.ecs.Healths[id].Value, 1e-9)

	f.status.Update(100)
	assert.Equal(t, 80.0, f.ecs.Healths[id].Value, "healing stops at initial health")
}

func TestApplyDamageIsPure(t *testing.T) {
	assert.Equal(t, 6.0, ApplyDamage(10, 4))
	assert.Equal(t, -2.0, ApplyDamage(3, 5))
}
