// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles through time scale multipliers.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	Multipliers    []float64
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color, multipliers []float64) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

// Multiplier is the time scale of the current state.
func (b *SpeedButton) Multiplier() float64 {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState%len(b.Multipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(b.LastClickTime)
	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Два треугольника
	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, fill)
		vector.StrokeLine(screen, b.X-width+dx, b.Y-height/2, b.X+dx, b.Y, 1, color.White, true)
		vector.StrokeLine(screen, b.X+dx, b.Y, b.X-width+dx, b.Y+height/2, 1, color.White, true)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, поэтому попадание проверяем по кругу
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

var whitePixel *ebiten.Image

func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
