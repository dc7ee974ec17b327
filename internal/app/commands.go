package app

import (
	"fmt"
	"log"

	"go-scanner-defense/internal/component"
)

// ActivateWave starts wave index (0-based). Towers built before it lose
// their refund and the scanner starts turning.
func (s *GameSession) ActivateWave(index int) error {
	if s.StateSystem.Finished() {
		return ErrGameOver
	}
	if s.ECS.GameState == component.WaveState {
		return ErrWaveActive
	}
	if index < 0 || index >= len(s.Level.Scripts) {
		return fmt.Errorf("activate wave %d of %d: %w", index+1, len(s.Level.Scripts), ErrUnknownWave)
	}
	if s.cleared[index] {
		return fmt.Errorf("activate wave %d: %w", index+1, ErrWaveCleared)
	}
	s.lockTowers()
	s.WaveSystem.Activate(index, s.Level.Scripts[index])
	s.StateSystem.SwitchToWaveState(index)
	s.nextWave = index + 1
	s.stopCountdown = -1
	s.Clock.SetRunning(true)
	return nil
}

// ActivateNextWave starts the wave after the last one activated.
func (s *GameSession) ActivateNextWave() error {
	return s.ActivateWave(s.NextWave())
}

// SetRunning starts or stops the scanner by hand.
func (s *GameSession) SetRunning(running bool) error {
	if s.StateSystem.Finished() {
		return ErrGameOver
	}
	s.Clock.SetRunning(running)
	if running {
		s.stopCountdown = -1
	}
	log.Printf("[Game] scanner running=%v", running)
	return nil
}

// SetTimeScale changes the simulation speed. 0 pauses.
func (s *GameSession) SetTimeScale(scale float64) error {
	if !validScale(scale) {
		return fmt.Errorf("time scale %v: %w", scale, ErrInvalidTimeScale)
	}
	s.timeScale = scale
	return nil
}
