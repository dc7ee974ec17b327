// internal/system/wave.go
package system

import (
	"log"

	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

// Spawner creates an enemy of the given type at a spawn sector.
type Spawner interface {
	SpawnEnemy(sector byte, enemy defs.EnemyType) (types.EntityID, error)
}

// spawnProcess spawns one enemy once its delay has passed.
type spawnProcess struct {
	spawner Spawner
	sector  byte
	enemy   defs.EnemyType
	delay   float64
	done    bool
}

func (p *spawnProcess) Tick(deltaTime float64, _ bool) {
	if p.done {
		return
	}
	p.delay -= deltaTime
	if p.delay > 0 {
		return
	}
	p.done = true
	if _, err := p.spawner.SpawnEnemy(p.sector, p.enemy); err != nil {
		log.Printf("[Wave] spawn %c%c failed: %v", p.sector, p.enemy, err)
	}
}

func (p *spawnProcess) Done() bool {
	return p.done
}

// WaveSystem walks a wave's spawn script one group per measure.
type WaveSystem struct {
	spawner  Spawner
	rng      *utils.PRNGService
	minDelay float64
	maxDelay float64

	script  defs.WaveScript
	number  int
	cursor  int
	wait    int
	active  bool
	pending *ProcessRunner
}

func NewWaveSystem(spawner Spawner, rng *utils.PRNGService, minDelay, maxDelay float64) *WaveSystem {
	return &WaveSystem{
		spawner:  spawner,
		rng:      rng,
		minDelay: minDelay,
		maxDelay: maxDelay,
		pending:  NewProcessRunner(),
	}
}

// Activate starts a wave. The first group is consumed on the second measure
// after activation.
func (s *WaveSystem) Activate(number int, script defs.WaveScript) {
	s.script = script
	s.number = number
	s.cursor = 0
	s.wait = 1
	s.active = true
	s.pending.Clear()
	log.Printf("[Wave] wave %d activated: %q (%d enemies)", number+1, script.Source, script.TotalSpawns())
}

// Reset drops the active wave and any spawns still waiting.
func (s *WaveSystem) Reset() {
	s.script = defs.WaveScript{}
	s.cursor, s.wait = 0, 0
	s.active = false
	s.pending.Clear()
}

// OnMeasureElapsed consumes the next group unless a wait is pending.
func (s *WaveSystem) OnMeasureElapsed() {
	if !s.active {
		return
	}
	if s.wait > 0 {
		s.wait--
		return
	}
	if s.cursor >= len(s.script.Groups) {
		return
	}
	group := s.script.Groups[s.cursor]
	s.cursor++
	for _, tok := range group {
		switch tok.Kind {
		case defs.TokenWait:
			s.wait += tok.Measures
		case defs.TokenSpawn:
			delay := 0.0
			for i := 0; i < tok.Count; i++ {
				delay += s.rng.Range(s.minDelay, s.maxDelay)
				s.pending.Add(&spawnProcess{
					spawner: s.spawner,
					sector:  tok.Sector,
					enemy:   tok.Enemy,
					delay:   delay,
				})
			}
		}
	}
}

// Update advances delayed spawns.
func (s *WaveSystem) Update(deltaTime float64) {
	s.pending.Update(deltaTime, true)
}

// Done reports whether the script is exhausted, nothing waits to spawn and
// no enemy is left alive.
func (s *WaveSystem) Done(liveEnemies int) bool {
	return s.active && s.cursor >= len(s.script.Groups) && s.pending.Len() == 0 && liveEnemies == 0
}

// Active reports whether a wave is running.
func (s *WaveSystem) Active() bool {
	return s.active
}

// Finish marks the running wave as completed.
func (s *WaveSystem) Finish() {
	s.active = false
}

// Number is the 0-based index of the current (or last) wave.
func (s *WaveSystem) Number() int {
	return s.number
}

// PendingSpawns counts spawns scheduled but not yet performed.
func (s *WaveSystem) PendingSpawns() int {
	return s.pending.Len()
}
