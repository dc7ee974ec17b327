// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/entity"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/system"
	"go-scanner-defense/internal/tempo"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/utils"
)

// Options tune a session beyond what the level says.
type Options struct {
	MusicDir string // prepended to relative clip paths
	Seed     int64  // overrides the level seed when non-zero
}

// GameSession holds one running level: the ECS, the beat clock and every
// system, wired together. It is single-threaded; drivers call Update and
// the commands from one goroutine.
type GameSession struct {
	ID      string
	Level   *defs.LevelDefinition
	Library *defs.Library
	Tempo   tempo.Tempo

	ECS                *entity.ECS
	Clock              *system.BeatClock
	Axes               *system.AxisRegistry
	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	HealthSystem       *system.HealthSystem
	VisualEffectSystem *system.VisualEffectSystem
	WaveSystem         *system.WaveSystem
	TargetingSystem    *system.TargetingSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StateSystem        *system.StateSystem
	Processes          *system.ProcessRunner
	Events             *event.Queue
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	opts          Options
	jitter        *utils.PathJitter
	gameTime      float64
	timeScale     float64
	nextWave      int
	cleared       map[int]bool
	stopCountdown int
	spawnSerial   int
}

// NewGameSession creates a session and loads its first level.
func NewGameSession(level *defs.LevelDefinition, lib *defs.Library, opts Options) (*GameSession, error) {
	if level == nil || lib == nil {
		return nil, fmt.Errorf("new game session: level and library are required")
	}
	ecs := entity.NewECS()
	events := event.NewQueue()
	s := &GameSession{
		ID:              uuid.NewString(),
		Library:         lib,
		ECS:             ecs,
		Events:          events,
		EventDispatcher: event.NewDispatcher(),
		Processes:       system.NewProcessRunner(),
		opts:            opts,
		timeScale:       1,
		stopCountdown:   -1,
	}
	s.PlayerSystem = system.NewPlayerSystem(ecs)
	s.HealthSystem = system.NewHealthSystem(ecs, s.PlayerSystem, events, config.DeathEffectDuration, config.BaseDamagePerHit)
	s.StatusEffectSystem = system.NewStatusEffectSystem(ecs, config.SlowFactor, config.SlowDurationTicks)
	s.MovementSystem = system.NewMovementSystem(ecs, config.MoveMeasureFraction, config.WaveDifficultyMul)
	s.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	s.TargetingSystem = system.NewTargetingSystem(ecs, lib)
	s.ProjectileSystem = system.NewProjectileSystem(ecs, s.HealthSystem, config.ProjectileContactRadius)
	s.StateSystem = system.NewStateSystem(ecs, events)

	if err := s.LoadLevel(level); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel switches the session to a level. Towers are removed without
// refund, enemies, projectiles and processes are dropped and the clock is
// rebuilt from the level tempo. Points carry over.
func (s *GameSession) LoadLevel(level *defs.LevelDefinition) error {
	t, err := tempo.Resolve(level, s.opts.MusicDir)
	if err != nil {
		return fmt.Errorf("load level %q: %w", level.Name, err)
	}
	clock, err := system.NewBeatClock(t.RotationPeriod(), level.AxisCount, level.MeasuresPerRotation)
	if err != nil {
		return fmt.Errorf("load level %q: %w", level.Name, err)
	}

	seed := level.Seed
	if s.opts.Seed != 0 {
		seed = s.opts.Seed
	}
	s.Rng = utils.NewPRNGService(seed)
	s.jitter = utils.NewPathJitter(s.Rng.Seed(), config.PathJitter)

	s.ECS.Clear()
	s.Processes.Clear()
	s.TargetingSystem.Clear()
	s.Events.Drain(nil)

	s.Level = level
	s.Tempo = t
	s.Clock = clock
	s.Axes = system.NewAxisRegistry(level.AxisCount, level.MinAxisLength, level.MaxAxisLength)
	s.WaveSystem = system.NewWaveSystem(s, s.Rng, config.SpawnDelayMin, config.SpawnDelayMax)
	s.CombatSystem = system.NewCombatSystem(s.ECS, s.Library, s.Axes, s.TargetingSystem, s.HealthSystem,
		s.StatusEffectSystem, s.Events, s.Processes, level.BurstPolicy, config.ProjectileTimeoutFactor)
	s.PlayerSystem.Reset(level.StartMoney, level.PlayerHealth)
	s.StateSystem.Reset()
	s.nextWave = 0
	s.cleared = make(map[int]bool, len(level.Scripts))
	s.stopCountdown = -1
	s.spawnSerial = 0

	log.Printf("[Game] session %s: level %q loaded, rotation %.2fs, %d axes, %d waves",
		s.ID, level.Name, t.RotationPeriod(), level.AxisCount, len(level.Scripts))
	return nil
}

// Update advances the simulation by deltaTime seconds of wall time.
func (s *GameSession) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	dt := deltaTime * s.timeScale
	if !(dt > 0) || s.StateSystem.Finished() {
		// команды между кадрами всё равно доходят до подписчиков
		s.Events.Drain(s.EventDispatcher)
		return
	}
	s.gameTime += dt
	s.ECS.GameTime = s.gameTime

	beats := s.Clock.Advance(dt)
	s.TargetingSystem.Refresh()
	for _, b := range beats {
		if b.Kind == system.SectorCrossed {
			s.CombatSystem.FireAxis(b.Sector)
		}
	}
	for _, b := range beats {
		switch b.Kind {
		case system.MeasureElapsed:
			s.WaveSystem.OnMeasureElapsed()
			s.StatusEffectSystem.OnMoveTick()
			s.MovementSystem.OnMoveTick(s.Clock.SecondsPerMeasure())
		case system.RotationCompleted:
			s.onRotationCompleted()
		}
	}

	running := s.Clock.Running()
	s.WaveSystem.Update(dt)
	s.Processes.Update(dt, running)
	s.ProjectileSystem.Update(dt)
	for _, id := range s.MovementSystem.Update(dt) {
		s.HealthSystem.SelfDestruct(id)
	}
	s.StatusEffectSystem.Update(dt)
	s.VisualEffectSystem.Update(dt)
	s.HealthSystem.Update(dt)

	s.pollState()
	s.Events.Drain(s.EventDispatcher)
}

// pollState runs the checks that follow all damage of a frame.
func (s *GameSession) pollState() {
	if s.PlayerSystem.Defeated() {
		s.Clock.SetRunning(false)
		s.Processes.Clear()
		s.StateSystem.SwitchToGameOver()
		return
	}
	if s.ECS.GameState != component.WaveState || !s.WaveSystem.Done(s.ECS.LiveEnemyCount()) {
		return
	}
	number := s.WaveSystem.Number()
	s.WaveSystem.Finish()
	s.cleared[number] = true
	s.PlayerSystem.Earn(config.WaveClearBonus)
	s.StateSystem.SwitchToBuildState(number)
	s.stopCountdown = s.Level.StopAfterRotations
	if len(s.cleared) >= len(s.Level.Scripts) {
		s.Clock.SetRunning(false)
		s.StateSystem.SwitchToLevelComplete()
	}
}

func (s *GameSession) onRotationCompleted() {
	if s.stopCountdown <= 0 || s.ECS.GameState == component.WaveState {
		return
	}
	s.stopCountdown--
	if s.stopCountdown > 0 {
		return
	}
	s.stopCountdown = -1
	s.Clock.SetRunning(false)
	s.Clock.Reset()
	s.Events.Push(event.Event{Type: event.RotationStopped})
	log.Printf("[Game] scanner stopped")
}

// SpawnEnemy creates an enemy of the given type at a spawn sector. The
// waypoints are jittered once here and stay fixed for the enemy's life.
func (s *GameSession) SpawnEnemy(sector byte, enemyType defs.EnemyType) (types.EntityID, error) {
	def, ok := s.Library.Enemies[enemyType]
	if !ok {
		return 0, fmt.Errorf("spawn %c%c: %w", sector, enemyType, ErrUnknownEnemyType)
	}
	waypoints, ok := s.Level.SpawnPath(sector)
	if !ok {
		return 0, fmt.Errorf("spawn %c%c: %w", sector, enemyType, ErrUnknownSector)
	}
	s.spawnSerial++

	points := make([]component.Position, 0, len(waypoints)+1)
	for i, wp := range waypoints {
		p := component.Position{X: wp.X, Y: wp.Y}
		if i < len(waypoints)-1 {
			dx, dy := s.jitter.Offset(s.spawnSerial, i)
			p.X += dx
			p.Y += dy
		}
		if i == 0 {
			points = append(points, component.Position{X: p.X, Y: p.Y, Z: -def.SpawnDepth})
		}
		points = append(points, p)
	}
	path := system.NewPath(points)

	id := s.ECS.NewEntity()
	s.ECS.Paths[id] = path
	s.ECS.Healths[id] = &component.Health{Value: def.Health, Initial: def.Health}
	s.ECS.Enemies[id] = &component.Enemy{
		Type:        def.Type,
		Sector:      sector,
		State:       component.EnemySpawned,
		MoneyReward: def.MoneyReward,
		PointValue:  def.PointValue,
		SpeedScale:  s.MovementSystem.SpeedScale(s.WaveSystem.Number()),
		MoveStep:    def.DistancePerMove,
		SpawnStep:   def.DistancePerMoveOnSpawn,
		SpawnLength: path.Cumulative[1],
	}
	if def.Regenerates {
		s.ECS.Regenerations[id] = &component.Regeneration{
			RatePerSecond: def.Health / (def.RegenerateMeasure * s.Clock.SecondsPerMeasure()),
			DelayTicks:    def.RegenerateDelay,
		}
	}
	s.MovementSystem.Place(id)
	s.Events.Push(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: id, Sector: sector, Type: def.Type}})
	return id, nil
}

// TimeScale is the current speed multiplier, 0 when paused.
func (s *GameSession) TimeScale() float64 {
	return s.timeScale
}

// GameTime is the scaled simulation time since the session started.
func (s *GameSession) GameTime() float64 {
	return s.gameTime
}

// WaveCount is the number of waves in the level.
func (s *GameSession) WaveCount() int {
	return len(s.Level.Scripts)
}

// NextWave is the 0-based index ActivateNextWave would start: the first
// uncleared wave at or after the last activated one, wrapping around.
func (s *GameSession) NextWave() int {
	n := len(s.Level.Scripts)
	if n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		if idx := (s.nextWave + i) % n; !s.cleared[idx] {
			return idx
		}
	}
	return s.nextWave
}

// ClearedWaves is the number of distinct waves cleared on this level.
func (s *GameSession) ClearedWaves() int {
	return len(s.cleared)
}

func validScale(scale float64) bool {
	return scale >= 0 && !math.IsNaN(scale) && !math.IsInf(scale, 0)
}
