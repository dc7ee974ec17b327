package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

func TestBuildAndRefundTower(t *testing.T) {
	s, rec := newTestSession(t, testRange)

	id, err := s.BuildTower(defs.KindPulse, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 450, s.ECS.Player.Money)
	assert.Equal(t, 1, s.Axes.TowerCount(0))
	assert.True(t, s.ECS.Towers[id].Refundable)

	refund, err := s.RefundTower(id)
	require.NoError(t, err)
	assert.Equal(t, 25, refund)
	assert.Equal(t, 475, s.ECS.Player.Money)
	assert.Zero(t, s.Axes.TowerCount(0))
	assert.NotContains(t, s.ECS.Towers, id)
	assert.NotContains(t, s.ECS.Positions, id)

	s.Events.Drain(s.EventDispatcher)
	require.Equal(t, 1, rec.count(event.TowerRemoved))
	for _, e := range rec.events {
		if e.Type == event.TowerRemoved {
			assert.Equal(t, event.TowerRemovedData{ID: id, Axis: 0, Refunded: 25}, e.Data)
		}
	}
}

func TestRefundRoundsDown(t *testing.T) {
	s, _ := newTestSession(t, testRange)
	def := s.Library.Towers[defs.KindPulse]
	def.Cost = 55
	s.Library.Towers[defs.KindPulse] = def

	id, err := s.BuildTower(defs.KindPulse, 3, 1)
	require.NoError(t, err)
	refund, err := s.RefundTower(id)
	require.NoError(t, err)
	assert.Equal(t, 27, refund)
	assert.Equal(t, 500-55+27, s.ECS.Player.Money)
}

func TestRefundClosesWhenWaveStarts(t *testing.T) {
	s, _ := newTestSession(t, testRange)
	id, err := s.BuildTower(defs.KindPulse, 0, 0)
	require.NoError(t, err)
	require.NoError(t, s.ActivateNextWave())

	_, err = s.RefundTower(id)
	assert.ErrorIs(t, err, ErrNotRefundable)
	assert.Equal(t, 450, s.ECS.Player.Money)
	assert.Equal(t, 1, s.Axes.TowerCount(0))

	// towers built during a wave stay refundable until the next one starts
	late, err := s.BuildTower(defs.KindPulse, 1, 0)
	require.NoError(t, err)
	_, err = s.RefundTower(late)
	assert.NoError(t, err)
}

func TestBuildRejectionsLeaveSessionUntouched(t *testing.T) {
	s, _ := newTestSession(t, testRange)
	existing, err := s.BuildTower(defs.KindPulse, 0, 0)
	require.NoError(t, err)

	cases := []struct {
		name string
		kind defs.TowerKind
		axis int
		slot int
		want error
	}{
		{"unknown kind", "laser", 0, 1, ErrUnknownTowerKind},
		{"negative axis", defs.KindPulse, -1, 0, ErrInvalidAxis},
		{"axis out of range", defs.KindPulse, 4, 0, ErrInvalidAxis},
		{"slot out of range", defs.KindPulse, 1, 2, ErrInvalidSlot},
		{"slot taken", defs.KindFrost, 0, 0, ErrSlotOccupied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.BuildTower(tc.kind, tc.axis, tc.slot)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 450, s.ECS.Player.Money)
			assert.Len(t, s.ECS.Towers, 1)
			assert.Contains(t, s.ECS.Towers, existing)
		})
	}
}

func TestBuildWithoutMoney(t *testing.T) {
	s, _ := newTestSession(t, testRange)
	s.ECS.Player.Money = 49

	_, err := s.BuildTower(defs.KindPulse, 0, 0)
	assert.ErrorIs(t, err, ErrInsufficientMoney)
	assert.Equal(t, 49, s.ECS.Player.Money)
	assert.Empty(t, s.ECS.Towers)
	assert.Zero(t, s.Axes.TowerCount(0))
}

func TestBuildTowerAtSnapsToAxis(t *testing.T) {
	s, _ := newTestSession(t, testRange)

	id, err := s.BuildTowerAt(defs.KindSniper, component.Position{X: 0.2, Y: 2.5})
	require.NoError(t, err)
	tower := s.ECS.Towers[id]
	assert.Equal(t, 1, tower.Axis)
	assert.Equal(t, -1, tower.Slot)
	pos := s.ECS.Positions[id]
	// the distance from the base survives the snap
	assert.InDelta(t, 0.0, pos.X, 1e-9)
	assert.InDelta(t, math.Hypot(0.2, 2.5), pos.Y, 1e-9)

	// too close to the first tower on the same axis
	_, err = s.BuildTowerAt(defs.KindPulse, component.Position{X: 0, Y: 3})
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// beyond the axis end the build point is clamped
	far, err := s.BuildTowerAt(defs.KindPulse, component.Position{X: 0, Y: -20})
	require.NoError(t, err)
	assert.Equal(t, 3, s.ECS.Towers[far].Axis)
	assert.InDelta(t, -4.0, s.ECS.Positions[far].Y, 1e-9)
}

func TestUpgradeTower(t *testing.T) {
	s, rec := newTestSession(t, testRange)
	id, err := s.BuildTower(defs.KindMortar, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 400, s.ECS.Player.Money)

	require.NoError(t, s.UpgradeTower(id))
	require.NoError(t, s.UpgradeTower(id))
	assert.Equal(t, 2, s.ECS.Towers[id].Level)
	assert.Equal(t, 400-80-140, s.ECS.Player.Money)
	assert.Equal(t, 320, s.ECS.Towers[id].Invested)

	assert.ErrorIs(t, s.UpgradeTower(id), ErrMaxLevel)
	assert.ErrorIs(t, s.UpgradeTower(types.EntityID(999)), ErrUnknownTower)
	assert.Equal(t, 180, s.ECS.Player.Money)

	s.Events.Drain(s.EventDispatcher)
	assert.Equal(t, 2, rec.count(event.TowerUpgraded))
}

func TestUpgradeWithoutMoney(t *testing.T) {
	s, _ := newTestSession(t, testRange)
	id, err := s.BuildTower(defs.KindPulse, 0, 0)
	require.NoError(t, err)
	s.ECS.Player.Money = 39

	assert.ErrorIs(t, s.UpgradeTower(id), ErrInsufficientMoney)
	assert.Zero(t, s.ECS.Towers[id].Level)
	assert.Equal(t, 39, s.ECS.Player.Money)
}
