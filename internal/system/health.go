package system

import (
	"log"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

// ApplyDamage returns the health left after a hit of the given power.
func ApplyDamage(health, power float64) float64 {
	return health - power
}

// HealthSystem applies damage, routes death payouts and removes dead enemies
// once their death effect has played.
type HealthSystem struct {
	ecs                 *entity.ECS
	player              *PlayerSystem
	events              *event.Queue
	deathEffectDuration float64
	baseDamage          int
}

func NewHealthSystem(ecs *entity.ECS, player *PlayerSystem, events *event.Queue, deathEffectDuration float64, baseDamage int) *HealthSystem {
	return &HealthSystem{
		ecs:                 ecs,
		player:              player,
		events:              events,
		deathEffectDuration: deathEffectDuration,
		baseDamage:          baseDamage,
	}
}

// TakeDamage hits an enemy. It does nothing unless the enemy is alive and
// vulnerable. Returns true when this hit killed it.
func (s *HealthSystem) TakeDamage(id types.EntityID, amount float64) bool {
	enemy, ok := s.ecs.LiveEnemy(id)
	if !ok || !enemy.Vulnerable() {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}
	health.Value = ApplyDamage(health.Value, amount)
	if regen, ok := s.ecs.Regenerations[id]; ok {
		regen.Counter = regen.DelayTicks
	}
	if flash, ok := s.ecs.DamageFlashes[id]; ok {
		flash.Restart(config.DamageFlashDuration)
	} else {
		s.ecs.DamageFlashes[id] = &component.DamageFlash{Duration: config.DamageFlashDuration}
	}
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	enemy.Killed = true
	s.kill(id, enemy)

	s.player.AddPoints(enemy.PointValue)
	s.player.Earn(enemy.MoneyReward)
	data := event.EnemyDiedData{ID: id, Reward: enemy.MoneyReward, Points: enemy.PointValue}
	if pos, ok := s.ecs.Positions[id]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	s.events.Push(event.Event{Type: event.EnemyDied, Data: data})
	return true
}

// SelfDestruct handles an enemy that reached the home base: the player takes
// damage and loses the enemy's point value. No money is paid.
func (s *HealthSystem) SelfDestruct(id types.EntityID) {
	enemy, ok := s.ecs.LiveEnemy(id)
	if !ok {
		return
	}
	enemy.ReachedBase = true
	if health, ok := s.ecs.Healths[id]; ok {
		health.Value = 0
	}
	s.kill(id, enemy)

	s.player.AddPoints(-enemy.PointValue)
	left := s.player.Damage(s.baseDamage)
	log.Printf("[Health] enemy %d reached the base, player health %d", id, left)
	s.events.Push(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyReachedBaseData{ID: id, Points: enemy.PointValue}})
	s.events.Push(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: s.baseDamage, Health: left}})
}

func (s *HealthSystem) kill(id types.EntityID, enemy *component.Enemy) {
	enemy.State = component.EnemyDead
	delete(s.ecs.Motions, id)
	delete(s.ecs.SlowEffects, id)
	s.ecs.DeathEffects[id] = &component.DeathEffect{Duration: s.deathEffectDuration}
}

// Update plays death effects and removes enemies whose effect is over.
func (s *HealthSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.DeathEffects {
		effect.Timer += deltaTime
		if effect.Timer >= effect.Duration {
			s.ecs.RemoveEntity(id)
		}
	}
}
