// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator shows the session phase as a colored dot. Clicking it
// starts the next wave.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	r := i.Radius * pulse(i.LastClickTime)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	return insideCircle(x, y, i.X, i.Y, i.Radius)
}

// HandleClick запускает анимацию клика
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

// pulse is the scale of a widget that was clicked at t: a short bump that
// decays back to 1.
func pulse(t time.Time) float32 {
	elapsed := time.Since(t).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func insideCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
