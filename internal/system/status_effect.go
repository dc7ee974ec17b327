// internal/system/status_effect.go
package system

import (
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/types"
)

// StatusEffectSystem управляет замедлением и регенерацией врагов.
type StatusEffectSystem struct {
	ecs        *entity.ECS
	slowFactor float64
	slowTicks  int
}

func NewStatusEffectSystem(ecs *entity.ECS, slowFactor float64, slowTicks int) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, slowFactor: slowFactor, slowTicks: slowTicks}
}

// Slow sets the enemy's slow counter to the full duration. Repeated slows
// refresh the counter, they never stack.
func (s *StatusEffectSystem) Slow(id types.EntityID) bool {
	if _, ok := s.ecs.LiveEnemy(id); !ok {
		return false
	}
	if effect, ok := s.ecs.SlowEffects[id]; ok {
		effect.Ticks = s.slowTicks
		return true
	}
	s.ecs.SlowEffects[id] = &component.SlowEffect{Ticks: s.slowTicks, SlowFactor: s.slowFactor}
	return true
}

// OnMoveTick counts regeneration delays down.
func (s *StatusEffectSystem) OnMoveTick() {
	for id, regen := range s.ecs.Regenerations {
		if _, ok := s.ecs.LiveEnemy(id); !ok {
			continue
		}
		if regen.Counter > 0 {
			regen.Counter--
		}
	}
}

// Update heals regenerating enemies whose delay has run out.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, regen := range s.ecs.Regenerations {
		if regen.Counter > 0 || regen.RatePerSecond <= 0 {
			continue
		}
		if _, ok := s.ecs.LiveEnemy(id); !ok {
			continue
		}
		health, ok := s.ecs.Healths[id]
		if !ok || health.Value >= health.Initial {
			continue
		}
		health.Value += regen.RatePerSecond * deltaTime
		if health.Value > health.Initial {
			health.Value = health.Initial
		}
	}
}
