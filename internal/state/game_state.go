// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/component"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/event"
	"go-scanner-defense/internal/types"
	"go-scanner-defense/internal/ui"
	"go-scanner-defense/pkg/render"
)

const messageDuration = 2 * time.Second

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	session  *app.GameSession
	lib      *defs.Library
	opts     app.Options
	face     font.Face
	levels   []string
	levelIdx int

	renderer   *render.ScannerRenderer
	indicator  *ui.StateIndicator
	speed      *ui.SpeedButton
	pause      *ui.PauseButton
	wave       *ui.WaveIndicator
	health     *ui.PlayerHealthIndicator
	measure    *ui.MeasureIndicator
	kinds      *ui.KindSelector
	infoPanel  *ui.InfoPanel
	music      *Music
	snap       app.Snapshot
	hovered    types.EntityID
	message    string
	messageEnd time.Time
	lastClick  time.Time
}

func NewGameState(sm *StateMachine, lib *defs.Library, opts app.Options, face font.Face, levels []string, levelIdx int) (*GameState, error) {
	level, err := assets.Level(levels[levelIdx], lib)
	if err != nil {
		return nil, err
	}
	session, err := app.NewGameSession(level, lib, opts)
	if err != nil {
		return nil, err
	}

	colors := &render.ScannerColors{
		Background:  config.BackgroundColor,
		Axis:        config.AxisColor,
		Slot:        render.WithAlpha(config.AxisColor, 90),
		Path:        render.WithAlpha(config.EnemyColor, 70),
		Beam:        config.BeamColor,
		Base:        config.BaseColor,
		Enemy:       config.EnemyColor,
		EnemyHidden: config.EnemyHiddenColor,
		Slowed:      config.TowerColors["frost"],
		Projectile:  config.ProjectileColor,
		Stroke:      config.TowerStrokeColor,
		Text:        config.TextLightColor,
		Towers:      config.TowerColors,
	}

	gs := &GameState{
		sm:        sm,
		session:   session,
		lib:       lib,
		opts:      opts,
		face:      face,
		levels:    levels,
		levelIdx:  levelIdx,
		renderer:  render.NewScannerRenderer(config.ScreenWidth, config.ScreenHeight, config.WorldScale, face, colors),
		indicator: ui.NewStateIndicator(float32(config.ScreenWidth-config.IndicatorOffsetX), float32(config.IndicatorOffsetX), float32(config.IndicatorRadius)),
		speed: ui.NewSpeedButton(float32(config.ScreenWidth-config.SpeedButtonOffset), float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize), config.SpeedButtonColors, config.SpeedMultipliers),
		pause: ui.NewPauseButton(float32(config.ScreenWidth-config.SpeedButtonOffset-50), float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize)*0.6, config.BuildStateColor, config.BaseColor),
		wave:      ui.NewWaveIndicator(config.ScreenWidth/2, 30, face, config.TextLightColor, config.WaveStateColor),
		health:    ui.NewPlayerHealthIndicator(20, 40, face),
		measure:   ui.NewMeasureIndicator(20, config.ScreenHeight-60),
		kinds:     ui.NewKindSelector(40, config.ScreenHeight-100, 10, defs.AllKinds, face),
		infoPanel: ui.NewInfoPanel(face),
	}
	gs.subscribe()
	gs.loadMusic()
	return gs, nil
}

func (g *GameState) subscribe() {
	for _, t := range []event.EventType{event.WaveStarted, event.WaveCompleted, event.GameOver, event.LevelCompleted, event.PlayerDamaged, event.RotationStopped} {
		g.session.EventDispatcher.Subscribe(t, g)
	}
}

func (g *GameState) loadMusic() {
	g.music.Close()
	g.music = nil
	clip := g.session.Level.Tempo.Clip
	if clip == "" {
		return
	}
	music, err := LoadMusic(clip, g.opts.MusicDir)
	if err != nil {
		log.Printf("[Game] music disabled: %v", err)
		return
	}
	g.music = music
}

// OnEvent shows a short banner for the events the player should notice.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		g.flash(fmt.Sprintf("Wave %d", e.Data.(event.WaveData).Number))
	case event.WaveCompleted:
		g.flash(fmt.Sprintf("Wave %d cleared +%d", e.Data.(event.WaveData).Number, config.WaveClearBonus))
	case event.PlayerDamaged:
		g.flash(fmt.Sprintf("Base hit! %d left", e.Data.(event.PlayerDamagedData).Health))
	case event.RotationStopped:
		g.music.Restart()
	case event.GameOver:
		g.flash("Game over. Enter for menu")
	case event.LevelCompleted:
		g.flash("Level complete. Enter to continue")
	}
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageEnd = time.Now().Add(messageDuration)
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.music.Sync(false)
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}
	if g.session.StateSystem.Finished() {
		g.handleFinished()
	} else {
		g.handleKeys()
		g.handleMouse()
	}

	g.session.Update(deltaTime)
	g.snap = g.session.Snapshot()
	g.pause.SetPaused(!g.snap.Running)
	g.music.Sync(g.snap.Running && g.session.TimeScale() > 0)
}

func (g *GameState) handleFinished() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if g.session.ECS.GameState == component.LevelCompleteState && g.levelIdx+1 < len(g.levels) {
		level, err := assets.Level(g.levels[g.levelIdx+1], g.lib)
		if err == nil {
			err = g.session.LoadLevel(level)
		}
		if err != nil {
			g.flash(err.Error())
			return
		}
		g.levelIdx++
		g.infoPanel.Hide()
		g.loadMusic()
		return
	}
	g.toMenu()
}

func (g *GameState) handleKeys() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			g.kinds.Select(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.report(g.session.ActivateNextWave())
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.report(g.session.SetRunning(!g.session.Clock.Running()))
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.report(g.session.UpgradeTower(g.infoPanel.TargetEntity))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.refund(g.infoPanel.TargetEntity)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.toMenu()
	}
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.hovered, _ = g.findEntityAt(x, y)

	if time.Since(g.lastClick) < config.ClickCooldownMs*time.Millisecond {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.lastClick = time.Now()
		g.handleLeftClick(x, y)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.lastClick = time.Now()
		if id, ok := g.findEntityAt(x, y); ok {
			g.refund(id)
		}
	}
}

func (g *GameState) handleLeftClick(x, y int) {
	switch {
	case g.infoPanel.Contains(x, y):
		switch g.infoPanel.Click(x, y) {
		case ui.PanelUpgrade:
			g.report(g.session.UpgradeTower(g.infoPanel.TargetEntity))
		case ui.PanelRefund:
			g.refund(g.infoPanel.TargetEntity)
		}
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.report(g.session.ActivateNextWave())
	case g.speed.IsClicked(x, y):
		g.speed.ToggleState()
		g.report(g.session.SetTimeScale(g.speed.Multiplier()))
	case g.pause.IsClicked(x, y):
		g.report(g.session.SetRunning(!g.session.Clock.Running()))
	default:
		if id, ok := g.findEntityAt(x, y); ok {
			g.infoPanel.SetTarget(id)
			return
		}
		g.infoPanel.Hide()
		wx, wy := g.renderer.ScreenToWorld(x, y)
		if math.Hypot(wx, wy) > g.session.Level.MaxAxisLength+1 {
			return
		}
		if id, ok := g.build(wx, wy); ok {
			g.infoPanel.SetTarget(id)
		}
	}
}

func (g *GameState) build(wx, wy float64) (types.EntityID, bool) {
	id, err := g.session.BuildTowerAt(g.kinds.Kind(), component.Position{X: wx, Y: wy})
	return id, g.report(err)
}

func (g *GameState) refund(id types.EntityID) {
	amount, err := g.session.RefundTower(id)
	if g.report(err) {
		g.flash(fmt.Sprintf("Refunded %d", amount))
		g.infoPanel.Hide()
	}
}

// report shows a rejected command to the player and returns whether the
// command went through.
func (g *GameState) report(err error) bool {
	if err != nil {
		g.flash(err.Error())
		return false
	}
	return true
}

// findEntityAt returns the tower or enemy under a screen point. Towers win.
func (g *GameState) findEntityAt(x, y int) (types.EntityID, bool) {
	hit := func(wx, wy, radius float64) bool {
		sx, sy := g.renderer.WorldToScreen(wx, wy)
		return math.Hypot(float64(sx)-float64(x), float64(sy)-float64(y)) <= radius
	}
	for _, t := range g.snap.Towers {
		if hit(t.X, t.Y, config.TowerRadius+2) {
			return t.ID, true
		}
	}
	for _, e := range g.snap.Enemies {
		if hit(e.X, e.Y, config.EnemyRadius+2) {
			return e.ID, true
		}
	}
	return 0, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap, g.session.Level, g.hovered)

	var stateColor color.Color = config.BuildStateColor
	if g.snap.State == component.WaveState.String() {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speed.Draw(screen)
	g.pause.Draw(screen)
	g.wave.Draw(screen, g.snap.Wave, g.snap.WaveCount)
	g.health.Draw(screen, g.snap.Health, g.session.Level.PlayerHealth)
	g.measure.Draw(screen, g.snap.Rotation, g.snap.Measures)
	g.kinds.Draw(screen, g.lib, g.snap.Money, config.TowerColors)
	g.renderer.DrawLabel(screen, 20, 20, "%s   money %d   points %d   x%.0f", g.snap.Level, g.snap.Money, g.snap.Points, g.snap.TimeScale)
	g.infoPanel.Draw(screen, g.snap, g.lib)

	if g.snap.State == component.GameOverState.String() || g.snap.State == component.LevelCompleteState.String() {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 96}, false)
	}
	if g.message != "" && (time.Now().Before(g.messageEnd) || g.session.StateSystem.Finished()) {
		g.renderer.DrawLabel(screen, config.ScreenWidth/2-100, 70, "%s", g.message)
	}
}

// toMenu leaves the level for good.
func (g *GameState) toMenu() {
	g.music.Close()
	g.music = nil
	g.sm.SetState(NewMenuState(g.sm, g.lib, g.opts, g.face))
}

func (g *GameState) Exit() {
	g.music.Sync(false)
}
