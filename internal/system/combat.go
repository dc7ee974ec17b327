package system

import (
	"log"
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

// CombatSystem управляет атакой башен. Towers attack only when the scanner
// crosses their axis.
type CombatSystem struct {
	ecs           *entity.ECS
	lib           *defs.Library
	axes          *AxisRegistry
	targeting     *TargetingSystem
	health        *HealthSystem
	status        *StatusEffectSystem
	events        *event.Queue
	processes     *ProcessRunner
	burstPolicy   defs.BurstPolicy
	timeoutFactor float64
}

func NewCombatSystem(
	ecs *entity.ECS,
	lib *defs.Library,
	axes *AxisRegistry,
	targeting *TargetingSystem,
	health *HealthSystem,
	status *StatusEffectSystem,
	events *event.Queue,
	processes *ProcessRunner,
	burstPolicy defs.BurstPolicy,
	timeoutFactor float64,
) *CombatSystem {
	return &CombatSystem{
		ecs:           ecs,
		lib:           lib,
		axes:          axes,
		targeting:     targeting,
		health:        health,
		status:        status,
		events:        events,
		processes:     processes,
		burstPolicy:   burstPolicy,
		timeoutFactor: timeoutFactor,
	}
}

// SetBurstPolicy changes how bursts behave while the clock is stopped.
func (s *CombatSystem) SetBurstPolicy(policy defs.BurstPolicy) {
	s.burstPolicy = policy
}

// FireAxis fires every built tower standing on the sector's axis, in build
// order. Returns the number of towers that fired.
func (s *CombatSystem) FireAxis(sector int) int {
	fired := 0
	for _, id := range s.axes.FiredTowers(sector, s.towerExists) {
		if s.Fire(id) {
			fired++
		}
	}
	return fired
}

func (s *CombatSystem) towerExists(id types.EntityID) bool {
	_, ok := s.ecs.Towers[id]
	return ok
}

// Fire runs one attack of a tower. TowerFired is emitted even when nothing is
// in range, since every crossing is a beat.
func (s *CombatSystem) Fire(id types.EntityID) bool {
	tower, ok := s.ecs.Towers[id]
	if !ok || !tower.IsBuilt {
		return false
	}
	plan, ok := PlanFor(s.lib, tower)
	if !ok {
		log.Printf("[Combat] no behaviour for tower %d of kind %q", id, tower.Kind)
		return false
	}
	s.events.Push(event.Event{Type: event.TowerFired, Data: event.TowerData{
		ID: id, Kind: string(tower.Kind), Axis: tower.Axis, Level: tower.Level,
	}})

	switch plan.Mode {
	case AttackInstant:
		s.FireInstant(id, s.targeting.Select(id, plan.Rule, nil), plan.Power, plan.Slows)
	case AttackProjectile:
		for _, target := range s.targeting.Select(id, plan.Rule, nil) {
			s.FireProjectile(id, target, plan.TravelDuration, plan.Power, plan.SplashRadius)
		}
	case AttackBurst:
		burst := NewBurstProcess(s, id, plan.Shots, plan.ShotInterval, plan.Power, s.burstPolicy)
		burst.Tick(0, true)
		s.processes.Add(burst)
	}
	return true
}

// FireInstant damages every target at once. Each hit checks for death
// before the next one is applied.
func (s *CombatSystem) FireInstant(towerID types.EntityID, targets []types.EntityID, power float64, slows bool) int {
	kills := 0
	for _, target := range targets {
		if slows {
			s.status.Slow(target)
		}
		if s.health.TakeDamage(target, power) {
			kills++
		}
	}
	return kills
}

// FireProjectile launches a projectile from the tower toward target.
func (s *CombatSystem) FireProjectile(towerID, target types.EntityID, travelDuration, power, splash float64) types.EntityID {
	origin, ok := s.ecs.Positions[towerID]
	if !ok {
		return 0
	}
	id := s.ecs.NewEntity()
	start := *origin
	s.ecs.Positions[id] = &start
	s.ecs.Projectiles[id] = &component.Projectile{
		Tower:          towerID,
		Target:         target,
		Origin:         start,
		TravelDuration: travelDuration,
		Timeout:        s.timeoutFactor * travelDuration,
		Power:          power,
		SplashRadius:   splash,
	}
	s.events.Push(event.Event{Type: event.ProjectileLaunched, Data: event.ProjectileData{ID: id, Tower: towerID, Target: target}})
	return id
}

// BurstProcess fires a tower's shots one interval apart, at most one per
// tick. Each shot picks the
// farthest valid enemy not hit yet by this burst; a shot with no target is
// skipped and the burst goes on.
type BurstProcess struct {
	combat   *CombatSystem
	tower    types.EntityID
	shots    int
	fired    int
	hits     int
	interval float64
	timer    float64
	power    float64
	policy   defs.BurstPolicy
	hit      map[types.EntityID]bool
}

func NewBurstProcess(combat *CombatSystem, tower types.EntityID, shots int, interval, power float64, policy defs.BurstPolicy) *BurstProcess {
	return &BurstProcess{
		combat:   combat,
		tower:    tower,
		shots:    shots,
		interval: interval,
		power:    power,
		policy:   policy,
		hit:      make(map[types.EntityID]bool),
	}
}

func (b *BurstProcess) Tick(deltaTime float64, clockRunning bool) {
	if b.Done() {
		return
	}
	if !clockRunning && b.policy == defs.BurstPause {
		return
	}
	b.timer -= deltaTime
	if b.timer > 0 {
		return
	}
	// не больше одного выстрела за тик, отставание не копится
	b.shoot()
	b.timer = math.Max(b.timer+b.interval, 0)
}

func (b *BurstProcess) shoot() {
	b.fired++
	if _, ok := b.combat.ecs.Towers[b.tower]; !ok {
		b.fired = b.shots
		return
	}
	targets := b.combat.targeting.Select(b.tower, RuleFarthest, b.hit)
	if len(targets) == 0 {
		return
	}
	b.hit[targets[0]] = true
	b.hits++
	b.combat.health.TakeDamage(targets[0], b.power)
}

func (b *BurstProcess) Done() bool {
	return b.fired >= b.shots
}

// Fired is the number of shots taken so far, skipped ones included.
func (b *BurstProcess) Fired() int {
	return b.fired
}

// Hits is the number of shots that had a target.
func (b *BurstProcess) Hits() int {
	return b.hits
}
