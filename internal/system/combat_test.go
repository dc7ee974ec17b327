package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

func TestTargetingRefreshTracksRange(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindPulse, 3, 0) // range 2.5
	near := f.addEnemy(4, 0, 20, 5)
	edge := f.addEnemy(5.5, 0, 20, 4)
	far := f.addEnemy(9, 0, 20, 3)

	f.targeting.Refresh()
	assert.Equal(t, []types.EntityID{near, edge}, f.targeting.InRange(tower))

	f.ecs.Positions[near].X = 8
	f.ecs.Positions[far].X = 3.5
	f.targeting.Refresh()
	assert.Equal(t, []types.EntityID{edge, far}, f.targeting.InRange(tower))

	f.health.TakeDamage(edge, 100)
	f.targeting.Refresh()
	assert.Equal(t, []types.EntityID{far}, f.targeting.InRange(tower))

	f.targeting.RemoveTower(tower)
	assert.Empty(t, f.targeting.InRange(tower))
}

func TestSelectFarthestPrefersEarlierEntryOnTies(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindSniper, 3, 0)
	a := f.addEnemy(4, 0, 20, 6)
	b := f.addEnemy(5, 0, 20, 6)
	c := f.addEnemy(6, 0, 20, 2)

	f.targeting.Enter(tower, b)
	f.targeting.Enter(tower, a)
	f.targeting.Enter(tower, c)
	f.targeting.Enter(tower, a)
	assert.Equal(t, []types.EntityID{b, a, c}, f.targeting.InRange(tower))

	assert.Equal(t, []types.EntityID{b}, f.targeting.Select(tower, RuleFarthest, nil))
	assert.Equal(t, []types.EntityID{a}, f.targeting.Select(tower, RuleFarthest, map[types.EntityID]bool{b: true}))

	f.targeting.Exit(tower, b)
	assert.Equal(t, []types.EntityID{a, c}, f.targeting.Select(tower, RuleAoEAll, nil))
}

func TestSelectSkipsInvulnerableEnemies(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindPulse, 3, 0)
	buried := f.addEnemy(4, 0, 20, 9)
	f.ecs.Enemies[buried].State = component.EnemyTraveling
	f.ecs.Enemies[buried].NextWaypoint = 0
	visible := f.addEnemy(4.5, 0, 20, 1)

	f.targeting.Refresh()
	assert.Len(t, f.targeting.InRange(tower), 2)
	assert.Equal(t, []types.EntityID{visible}, f.targeting.Select(tower, RuleFarthest, nil))
	assert.Equal(t, []types.EntityID{visible}, f.targeting.Select(tower, RuleAoEAll, nil))
}

func TestPulseHitsEverythingInRange(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindPulse, 3, 0)
	a := f.addEnemy(4, 0, 20, 1)
	b := f.addEnemy(2, 0.5, 20, 1)
	out := f.addEnemy(8, 0, 20, 1)

	f.targeting.Refresh()
	assert.Equal(t, 1, f.combat.FireAxis(0))
	assert.Equal(t, 0, f.combat.FireAxis(4), "nothing stands on the opposite axis")

	assert.Equal(t, 16.0, f.ecs.Healths[a].Value)
	assert.Equal(t, 16.0, f.ecs.Healths[b].Value)
	assert.Equal(t, 20.0, f.ecs.Healths[out].Value)

	fired := eventsOfType(f.drain(), event.TowerFired)
	require.Len(t, fired, 1)
	assert.Equal(t, event.TowerData{ID: tower, Kind: "pulse", Axis: 0}, fired[0].Data)
}

func TestTowersOnAxisFireInBuildOrder(t *testing.T) {
	f := newFixture(t)
	first := f.addTower(defs.KindPulse, 2, 0)
	second := f.addTower(defs.KindPulse, 5, 0)
	removed := f.addTower(defs.KindPulse, 8, 0)
	f.ecs.RemoveEntity(removed)

	assert.Equal(t, 2, f.combat.FireAxis(0))
	var ids []types.EntityID
	for _, e := range eventsOfType(f.drain(), event.TowerFired) {
		ids = append(ids, e.Data.(event.TowerData).ID)
	}
	assert.Equal(t, []types.EntityID{first, second}, ids)
	assert.Equal(t, 2, f.axes.TowerCount(0))
}

func TestFrostDamagesAndSlows(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindFrost, 3, 0)
	id := f.addEnemy(4, 0, 20, 1)

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	assert.Equal(t, 19.0, f.ecs.Healths[id].Value)
	require.Contains(t, f.ecs.SlowEffects, id)
	assert.Equal(t, 4, f.ecs.SlowEffects[id].Ticks)
}

func TestSniperProjectileHitsOnArrival(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindSniper, 3, 0)
	near := f.addEnemy(4, 0, 20, 1)
	lead := f.addEnemy(7, 0, 20, 8)

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	require.Len(t, f.ecs.Projectiles, 1)
	events := f.drain()
	require.Len(t, eventsOfType(events, event.ProjectileLaunched), 1)

	f.projectiles.Update(0.1)
	assert.Equal(t, 20.0, f.ecs.Healths[lead].Value, "still in flight")
	f.projectiles.Update(0.3)
	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, 5.0, f.ecs.Healths[lead].Value)
	assert.Equal(t, 20.0, f.ecs.Healths[near].Value)
}

func TestProjectileFollowsMovingTarget(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindSniper, 3, 0)
	target := f.addEnemy(7, 0, 100, 8)
	pid := f.combat.FireProjectile(tower, target, 1, 10, 0)

	f.ecs.Positions[target].Y = 2
	f.projectiles.Update(0.5)
	pos := f.ecs.Positions[pid]
	require.NotNil(t, pos)
	// Eased halfway: 87.5% of the way to where the target is now.
	assert.InDelta(t, 3+4*0.875, pos.X, 1e-9)
	assert.InDelta(t, 2*0.875, pos.Y, 1e-9)
}

func TestProjectileWithDeadTargetFizzles(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindSniper, 3, 0)
	target := f.addEnemy(7, 0, 20, 8)
	bystander := f.addEnemy(7, 0, 20, 1)

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	f.health.TakeDamage(target, 50)
	f.projectiles.Update(1)

	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, 20.0, f.ecs.Healths[bystander].Value)
	assert.Equal(t, 105, f.ecs.Player.Money, "only the direct kill paid out")
}

func TestProjectileWithRemovedTargetFizzles(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindSniper, 3, 0)
	target := f.addEnemy(7, 0, 20, 8)
	f.combat.FireProjectile(tower, target, 0.35, 15, 0)

	f.ecs.RemoveEntity(target)
	f.projectiles.Update(0.05)
	assert.Empty(t, f.ecs.Projectiles)
}

func TestMortarSplash(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindMortar, 0, 3) // axis 2, range 5, splash 1
	target := f.addEnemy(0, 6, 30, 5)
	nearby := f.addEnemy(0.5, 6, 30, 4)
	apart := f.addEnemy(0, 8, 30, 1)

	f.targeting.Refresh()
	f.combat.FireAxis(2)
	f.projectiles.Update(0.8)

	assert.Equal(t, 22.0, f.ecs.Healths[target].Value)
	assert.Equal(t, 22.0, f.ecs.Healths[nearby].Value)
	assert.Equal(t, 30.0, f.ecs.Healths[apart].Value)
}

func TestBurstAgainstFewerEnemiesThanShots(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindBurst, 3, 0) // 3 shots of 5, 0.12s apart
	lead := f.addEnemy(4, 0, 20, 6)
	other := f.addEnemy(5, 0, 20, 2)

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	assert.Equal(t, 15.0, f.ecs.Healths[lead].Value, "first shot is immediate")
	assert.Equal(t, 20.0, f.ecs.Healths[other].Value)
	require.Equal(t, 1, f.processes.Len())

	f.processes.Update(0.12, true)
	assert.Equal(t, 15.0, f.ecs.Healths[other].Value)

	f.processes.Update(0.12, true)
	assert.Equal(t, 15.0, f.ecs.Healths[lead].Value, "no enemy is hit twice by one burst")
	assert.Equal(t, 15.0, f.ecs.Healths[other].Value)
	assert.Zero(t, f.processes.Len())
}

func TestBurstPolicyOnStoppedClock(t *testing.T) {
	for _, tc := range []struct {
		policy defs.BurstPolicy
		want   float64
	}{
		{defs.BurstComplete, 45},
		{defs.BurstPause, 55},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			f := newFixture(t)
			f.combat.SetBurstPolicy(tc.policy)
			f.addTower(defs.KindBurst, 3, 0)
			ids := []types.EntityID{f.addEnemy(4, 0, 20, 3), f.addEnemy(4.2, 0, 20, 2), f.addEnemy(4.4, 0, 20, 1)}

			f.targeting.Refresh()
			f.combat.FireAxis(0)
			for i := 0; i < 4; i++ {
				f.processes.Update(0.5, false)
			}

			total := 0.0
			for _, id := range ids {
				total += f.ecs.Healths[id].Value
			}
			assert.Equal(t, tc.want, total)
		})
	}
}

func TestBurstFiresOneShotPerTick(t *testing.T) {
	f := newFixture(t)
	f.addTower(defs.KindBurst, 3, 0)
	ids := []types.EntityID{f.addEnemy(4, 0, 20, 3), f.addEnemy(4.2, 0, 20, 2), f.addEnemy(4.4, 0, 20, 1)}
	damaged := func() int {
		n := 0
		for _, id := range ids {
			if f.ecs.Healths[id].Value < 20 {
				n++
			}
		}
		return n
	}

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	require.Equal(t, 1, damaged())

	// a long frame still lands a single shot
	f.processes.Update(1, true)
	assert.Equal(t, 2, damaged())
	require.Equal(t, 1, f.processes.Len())

	f.processes.Update(0.01, true)
	assert.Equal(t, 3, damaged())
	assert.Zero(t, f.processes.Len())
}

func TestBurstStopsWhenTowerIsGone(t *testing.T) {
	f := newFixture(t)
	tower := f.addTower(defs.KindBurst, 3, 0)
	f.addEnemy(4, 0, 20, 3)
	f.addEnemy(4.5, 0, 20, 2)

	f.targeting.Refresh()
	f.combat.FireAxis(0)
	f.ecs.RemoveEntity(tower)
	f.processes.Update(1, true)
	assert.Zero(t, f.processes.Len())
}

func TestEveryKindHasBehavior(t *testing.T) {
	f := newFixture(t)
	for _, kind := range defs.AllKinds {
		b, ok := BehaviorFor(kind)
		require.True(t, ok, kind)
		def, ok := f.lib.Tower(kind)
		require.True(t, ok, kind)

		low := b.Stats(def, 0)
		high := b.Stats(def, def.MaxLevel()-1)
		assert.Greater(t, high.Power, low.Power, kind)
		assert.Equal(t, high, b.Stats(def, def.MaxLevel()+5), "levels clamp to the table")
	}
	_, ok := BehaviorFor("laser")
	assert.False(t, ok)
}
