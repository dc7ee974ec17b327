// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/audio"
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
)

const messageMs = 2500

type Game struct {
	screen  tcell.Screen
	session *app.GameSession
	lib     *defs.Library
	cues    *audio.CuePlayer
	levels  []string
	level   int

	kind       int
	cur        cursor
	message    string
	messageAt  time.Time
	lastUpdate time.Time
}

func NewGame(lib *defs.Library, levels []string, level int, opts app.Options, sound bool) (*Game, error) {
	def, err := assets.Level(levels[level], lib)
	if err != nil {
		return nil, err
	}
	session, err := app.NewGameSession(def, lib, opts)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:     screen,
		session:    session,
		lib:        lib,
		cues:       audio.NewCuePlayer(),
		levels:     levels,
		level:      level,
		lastUpdate: time.Now(),
	}
	if sound {
		if err := g.cues.Initialize(); err != nil {
			// без звука тоже можно играть
			log.Printf("[TUI] audio initialization failed: %v", err)
		}
	}
	session.EventDispatcher.SubscribeAll(g.cues)
	session.EventDispatcher.SubscribeAll(g)
	return g, nil
}

// OnEvent shows the events worth a line in the HUD.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		g.say("wave %d started", e.Data.(event.WaveData).Number)
	case event.WaveCompleted:
		g.say("wave %d cleared", e.Data.(event.WaveData).Number)
	case event.PlayerDamaged:
		g.say("base hit, %d left", e.Data.(event.PlayerDamagedData).Health)
	case event.GameOver:
		g.say("game over, q to quit")
	case event.LevelCompleted:
		g.say("level complete, n for next")
	}
}

func (g *Game) say(format string, args ...interface{}) {
	g.message = fmt.Sprintf(format, args...)
	g.messageAt = time.Now()
}

func (g *Game) report(err error) {
	if err != nil {
		g.say("%v", err)
	}
}

func (g *Game) towerAtCursor() (types.EntityID, bool) {
	for _, t := range g.session.Snapshot().Towers {
		if t.Axis == g.cur.axis && t.Slot == g.cur.slot {
			return t.ID, true
		}
	}
	return 0, false
}

func (g *Game) nextLevel() {
	if g.session.ECS.GameState != component.LevelCompleteState || g.level+1 >= len(g.levels) {
		return
	}
	def, err := assets.Level(g.levels[g.level+1], g.lib)
	if err == nil {
		err = g.session.LoadLevel(def)
	}
	if err != nil {
		g.report(err)
		return
	}
	g.level++
	g.cur = cursor{}
	g.say("loaded %s", def.Name)
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		axes, slots := g.session.Level.AxisCount, g.session.Level.SlotsPerAxis
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.cur.axis = (g.cur.axis + 1) % axes
		case tcell.KeyRight:
			g.cur.axis = (g.cur.axis + axes - 1) % axes
		case tcell.KeyUp:
			g.cur.slot = min(g.cur.slot+1, slots-1)
		case tcell.KeyDown:
			g.cur.slot = max(g.cur.slot-1, 0)
		case tcell.KeyEnter:
			g.build()
		case tcell.KeyRune:
			return g.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '5':
		g.kind = int(r - '1')
	case r == 'q':
		return false
	case r == 'b':
		g.build()
	case r == 'u':
		if id, ok := g.towerAtCursor(); ok {
			g.report(g.session.UpgradeTower(id))
		}
	case r == 'r':
		if id, ok := g.towerAtCursor(); ok {
			refund, err := g.session.RefundTower(id)
			if err != nil {
				g.report(err)
			} else {
				g.say("refunded %d", refund)
			}
		}
	case r == ' ':
		g.report(g.session.ActivateNextWave())
	case r == 's':
		g.report(g.session.SetRunning(!g.session.Clock.Running()))
	case r == '+', r == '=':
		g.report(g.session.SetTimeScale(stepScale(g.session.TimeScale(), true)))
	case r == '-':
		g.report(g.session.SetTimeScale(stepScale(g.session.TimeScale(), false)))
	case r == 'n':
		g.nextLevel()
	}
	return true
}

// stepScale moves to the neighbouring speed multiplier and stops at the ends.
func stepScale(current float64, up bool) float64 {
	steps := config.SpeedMultipliers
	if up {
		for _, m := range steps {
			if m > current {
				return m
			}
		}
		return steps[len(steps)-1]
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < current {
			return steps[i]
		}
	}
	return steps[0]
}

func (g *Game) build() {
	_, err := g.session.BuildTower(defs.AllKinds[g.kind], g.cur.axis, g.cur.slot)
	g.report(err)
}

func (g *Game) draw() {
	g.screen.Clear()
	snap := g.session.Snapshot()
	drawField(g.screen, snap, g.session.Level.SlotRadius, g.session.Level.SlotsPerAxis, g.cur)

	message := g.message
	if time.Since(g.messageAt).Milliseconds() > messageMs && !g.session.StateSystem.Finished() {
		message = ""
	}
	drawHUD(g.screen, snap, string(defs.AllKinds[g.kind]), g.cur, message)
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(g.lastUpdate).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			g.lastUpdate = now
			g.session.Update(dt)
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.cues.Close()
	g.screen.Fini()
}

func main() {
	levelName := flag.String("level", "", "embedded level to start with")
	musicDir := flag.String("music", "", "directory with level music clips")
	seed := flag.Int64("seed", 0, "override the level seed")
	sound := flag.Bool("sound", true, "play cues through the speaker")
	logPath := flag.String("log", "", "write the session log to this file")
	flag.Parse()

	// the terminal belongs to tcell
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	lib, err := assets.DefaultLibrary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load library: %v\n", err)
		os.Exit(1)
	}
	levels, err := assets.LevelNames()
	if err != nil || len(levels) == 0 {
		fmt.Fprintf(os.Stderr, "No levels: %v\n", err)
		os.Exit(1)
	}
	start := 0
	for i, name := range levels {
		if name == *levelName {
			start = i
		}
	}

	game, err := NewGame(lib, levels, start, app.Options{MusicDir: *musicDir, Seed: *seed}, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
