// internal/ui/kind_selector.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scanner-defense/internal/defs"
)

// KindSelector lists the buildable tower kinds with their hotkeys and
// costs. The selected kind is outlined; kinds the player cannot afford are
// struck through.
type KindSelector struct {
	X, Y     float32
	Size     float32
	Kinds    []defs.TowerKind
	Selected int
	face     font.Face
}

func NewKindSelector(x, y, size float32, kinds []defs.TowerKind, face font.Face) *KindSelector {
	return &KindSelector{X: x, Y: y, Size: size, Kinds: kinds, face: face}
}

// Select picks kind index i; out of range indexes are ignored.
func (s *KindSelector) Select(i int) {
	if i >= 0 && i < len(s.Kinds) {
		s.Selected = i
	}
}

// Kind is the selected tower kind.
func (s *KindSelector) Kind() defs.TowerKind {
	return s.Kinds[s.Selected]
}

func (s *KindSelector) Draw(screen *ebiten.Image, lib *defs.Library, money int, colors map[string]color.RGBA) {
	step := s.Size*2 + 40
	for i, kind := range s.Kinds {
		cx := s.X + float32(i)*step
		vector.DrawFilledCircle(screen, cx, s.Y, s.Size, colors[string(kind)], true)
		if i == s.Selected {
			vector.StrokeCircle(screen, cx, s.Y, s.Size+4, 2, color.White, true)
		}

		def, ok := lib.Tower(kind)
		if !ok {
			continue
		}
		label := strconv.Itoa(i+1) + " " + strconv.Itoa(def.Cost)
		text.Draw(screen, label, s.face, int(cx+s.Size+4), int(s.Y)+4, color.White)
		if money < def.Cost {
			vector.StrokeLine(screen, cx-s.Size, s.Y+s.Size, cx+s.Size, s.Y-s.Size, 2, color.RGBA{200, 0, 0, 255}, true)
		}
	}
}
