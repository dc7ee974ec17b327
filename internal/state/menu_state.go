// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/assets"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
)

// MenuState lists the embedded levels.
type MenuState struct {
	sm       *StateMachine
	lib      *defs.Library
	opts     app.Options
	face     font.Face
	levels   []string
	selected int
	err      string
}

func NewMenuState(sm *StateMachine, lib *defs.Library, opts app.Options, face font.Face) *MenuState {
	levels, err := assets.LevelNames()
	if err != nil {
		log.Printf("[Menu] list levels: %v", err)
	}
	return &MenuState{sm: sm, lib: lib, opts: opts, face: face, levels: levels}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if len(m.levels) == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.selected = (m.selected + len(m.levels) - 1) % len(m.levels)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.selected = (m.selected + 1) % len(m.levels)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		gs, err := NewGameState(m.sm, m.lib, m.opts, m.face, m.levels, m.selected)
		if err != nil {
			m.err = err.Error()
			log.Printf("[Menu] %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-120, config.ScreenHeight/3
	text.Draw(screen, "SCANNER DEFENSE", m.face, x, y, config.TextLightColor)
	y += 40
	for i, name := range m.levels {
		c := color.Color(config.AxisColor)
		prefix := "  "
		if i == m.selected {
			c = config.TextLightColor
			prefix = "> "
		}
		text.Draw(screen, fmt.Sprintf("%s%d. %s", prefix, i+1, name), m.face, x, y, c)
		y += 20
	}
	if m.err != "" {
		text.Draw(screen, m.err, m.face, x, y+20, config.WaveStateColor)
	}
}

func (m *MenuState) Exit() {}
