package app

import "errors"

// Command rejections. A rejected command leaves the session untouched.
var (
	ErrGameOver          = errors.New("game is over")
	ErrInsufficientMoney = errors.New("insufficient money")
	ErrMaxLevel          = errors.New("tower is at max level")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrUnknownTowerKind  = errors.New("unknown tower kind")
	ErrNotRefundable     = errors.New("tower is no longer refundable")
	ErrInvalidAxis       = errors.New("invalid axis")
	ErrInvalidSlot       = errors.New("invalid build slot")
	ErrSlotOccupied      = errors.New("build position occupied")
	ErrWaveActive        = errors.New("a wave is already active")
	ErrUnknownWave       = errors.New("unknown wave")
	ErrWaveCleared       = errors.New("wave already cleared")
	ErrInvalidTimeScale  = errors.New("time scale must be a finite non-negative number")
	ErrUnknownEnemyType  = errors.New("unknown enemy type")
	ErrUnknownSector     = errors.New("no spawn path for sector")
)
