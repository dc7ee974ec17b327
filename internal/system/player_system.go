// internal/system/player_system.go
package system

import (
	"go-scanner-defense/internal/entity"
)

// PlayerSystem отвечает за кошелёк, очки и здоровье игрока.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// Reset sets the ledger for a new level. Points carry over.
func (s *PlayerSystem) Reset(money, health int) {
	s.ecs.Player.Money = money
	s.ecs.Player.Health = health
}

// CanAfford reports whether the player holds at least cost.
func (s *PlayerSystem) CanAfford(cost int) bool {
	return s.ecs.Player.Money >= cost
}

// Spend takes cost from the wallet. Returns false, without charging, when the
// player cannot afford it.
func (s *PlayerSystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Player.Money -= cost
	return true
}

func (s *PlayerSystem) Earn(amount int) {
	s.ecs.Player.Money += amount
}

func (s *PlayerSystem) AddPoints(points int) {
	s.ecs.Player.Points += points
}

// Damage lowers player health, never below zero, and returns what is left.
func (s *PlayerSystem) Damage(amount int) int {
	p := s.ecs.Player
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health
}

// Defeated is true once health has run out.
func (s *PlayerSystem) Defeated() bool {
	return s.ecs.Player.Health <= 0
}
