// internal/app/tower_management.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

// BuildTower builds a tower of kind in a build slot of an axis.
func (s *GameSession) BuildTower(kind defs.TowerKind, axis, slot int) (types.EntityID, error) {
	if err := s.checkBuild(kind, axis); err != nil {
		return 0, err
	}
	if slot < 0 || slot >= s.Level.SlotsPerAxis {
		return 0, fmt.Errorf("build %s on axis %d slot %d: %w", kind, axis, slot, ErrInvalidSlot)
	}
	return s.placeTower(kind, axis, slot, s.Level.SlotRadius(slot))
}

// BuildTowerAt builds a tower at the axis point closest to pos.
func (s *GameSession) BuildTowerAt(kind defs.TowerKind, pos component.Position) (types.EntityID, error) {
	axis := s.Axes.ClosestAxis(pos)
	snapped := s.Axes.PointOnAxis(pos)
	return s.placeTower(kind, axis, -1, math.Hypot(snapped.X, snapped.Y))
}

func (s *GameSession) checkBuild(kind defs.TowerKind, axis int) error {
	if s.StateSystem.Finished() {
		return ErrGameOver
	}
	if _, ok := s.Library.Tower(kind); !ok {
		return fmt.Errorf("build %q: %w", kind, ErrUnknownTowerKind)
	}
	if !s.Axes.Valid(axis) {
		return fmt.Errorf("build %s on axis %d: %w", kind, axis, ErrInvalidAxis)
	}
	return nil
}

func (s *GameSession) placeTower(kind defs.TowerKind, axis, slot int, radius float64) (types.EntityID, error) {
	if err := s.checkBuild(kind, axis); err != nil {
		return 0, err
	}
	def, _ := s.Library.Tower(kind)
	for _, other := range s.Axes.Towers(axis) {
		pos, ok := s.ECS.Positions[other]
		if !ok {
			continue
		}
		if math.Abs(math.Hypot(pos.X, pos.Y)-radius) < config.MinTowerSpacing {
			return 0, fmt.Errorf("build %s on axis %d at %.2f: %w", kind, axis, radius, ErrSlotOccupied)
		}
	}
	if !s.PlayerSystem.Spend(def.Cost) {
		return 0, fmt.Errorf("build %s costs %d: %w", kind, def.Cost, ErrInsufficientMoney)
	}

	id := s.ECS.NewEntity()
	pos := s.Axes.PointAt(axis, radius)
	s.ECS.Positions[id] = &pos
	s.ECS.Towers[id] = &component.Tower{
		Kind:       kind,
		Axis:       axis,
		Slot:       slot,
		Cost:       def.Cost,
		Invested:   def.Cost,
		Refundable: true,
		IsBuilt:    true,
	}
	s.Axes.AddTower(axis, id)
	s.Events.Push(event.Event{Type: event.TowerPlaced, Data: event.TowerData{ID: id, Kind: string(kind), Axis: axis}})
	log.Printf("[Tower] built %s %d on axis %d at %.2f", kind, id, axis, radius)
	return id, nil
}

// UpgradeTower raises a tower one level.
func (s *GameSession) UpgradeTower(id types.EntityID) error {
	if s.StateSystem.Finished() {
		return ErrGameOver
	}
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("upgrade %d: %w", id, ErrUnknownTower)
	}
	def, ok := s.Library.Tower(tower.Kind)
	if !ok {
		return fmt.Errorf("upgrade %d: %w", id, ErrUnknownTowerKind)
	}
	if tower.Level+1 >= def.MaxLevel() {
		return fmt.Errorf("upgrade %d: %w", id, ErrMaxLevel)
	}
	cost := def.UpgradeCost[tower.Level]
	if !s.PlayerSystem.Spend(cost) {
		return fmt.Errorf("upgrade %d costs %d: %w", id, cost, ErrInsufficientMoney)
	}
	tower.Level++
	tower.Invested += cost
	s.Events.Push(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: id, Kind: string(tower.Kind), Axis: tower.Axis, Level: tower.Level,
	}})
	return nil
}

// RefundTower removes a tower built since the last wave started and pays
// back half of its build cost.
func (s *GameSession) RefundTower(id types.EntityID) (int, error) {
	if s.StateSystem.Finished() {
		return 0, ErrGameOver
	}
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return 0, fmt.Errorf("refund %d: %w", id, ErrUnknownTower)
	}
	if !tower.Refundable {
		return 0, fmt.Errorf("refund %d: %w", id, ErrNotRefundable)
	}
	refund := int(math.Floor(float64(tower.Cost) * config.RefundRatio))
	s.PlayerSystem.Earn(refund)
	s.destroyTower(id, refund)
	return refund, nil
}

func (s *GameSession) destroyTower(id types.EntityID, refunded int) {
	axis, _ := s.Axes.Axis(id)
	s.Axes.RemoveTower(id)
	s.TargetingSystem.RemoveTower(id)
	s.ECS.RemoveEntity(id)
	s.Events.Push(event.Event{Type: event.TowerRemoved, Data: event.TowerRemovedData{ID: id, Axis: axis, Refunded: refunded}})
}

// lockTowers ends the refund window of every standing tower.
func (s *GameSession) lockTowers() {
	for _, tower := range s.ECS.Towers {
		tower.Refundable = false
	}
}
