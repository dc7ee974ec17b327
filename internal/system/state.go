// internal/system/state.go
package system

import (
	"log"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/event"
)

// StateSystem переключает фазы игры: build, wave, game over, level complete.
type StateSystem struct {
	ecs    *entity.ECS
	events *event.Queue
}

func NewStateSystem(ecs *entity.ECS, events *event.Queue) *StateSystem {
	return &StateSystem{ecs: ecs, events: events}
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

// Finished is true once the game can no longer change phase.
func (s *StateSystem) Finished() bool {
	return s.ecs.GameState == component.GameOverState || s.ecs.GameState == component.LevelCompleteState
}

func (s *StateSystem) SwitchToWaveState(number int) {
	s.ecs.GameState = component.WaveState
	s.events.Push(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: number + 1}})
}

func (s *StateSystem) SwitchToBuildState(completedWave int) {
	s.ecs.GameState = component.BuildState
	s.events.Push(event.Event{Type: event.WaveCompleted, Data: event.WaveData{Number: completedWave + 1}})
	log.Printf("[State] wave %d completed", completedWave+1)
}

func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.GameState == component.GameOverState {
		return
	}
	s.ecs.GameState = component.GameOverState
	s.events.Push(event.Event{Type: event.GameOver})
	log.Printf("[State] game over, points %d", s.ecs.Player.Points)
}

func (s *StateSystem) SwitchToLevelComplete() {
	if s.ecs.GameState == component.LevelCompleteState {
		return
	}
	s.ecs.GameState = component.LevelCompleteState
	s.events.Push(event.Event{Type: event.LevelCompleted})
	log.Printf("[State] level complete, points %d", s.ecs.Player.Points)
}

// Reset returns to the build phase without raising events.
func (s *StateSystem) Reset() {
	s.ecs.GameState = component.BuildState
}
