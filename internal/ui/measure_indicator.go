// internal/ui/measure_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	rotationBarWidth  = 118
	rotationBarHeight = 12
	measureRectWidth  = 16
	measureRectHeight = 12
	measureRectGap    = 9
	borderWidth       = 1
)

var (
	barColorFill = color.RGBA{70, 100, 120, 220}
	borderColor  = color.White
)

// MeasureIndicator shows how far the beam is through the rotation and which
// measure of the rotation is playing.
type MeasureIndicator struct {
	X, Y float32
}

func NewMeasureIndicator(x, y float32) *MeasureIndicator {
	return &MeasureIndicator{X: x, Y: y}
}

// measureOf is the 0-based measure a rotation progress in [0, 1) falls in.
func measureOf(progress float64, measures int) int {
	if measures <= 0 {
		return 0
	}
	m := int(progress * float64(measures))
	if m >= measures {
		m = measures - 1
	}
	if m < 0 {
		m = 0
	}
	return m
}

// Draw отрисовывает индикатор.
func (i *MeasureIndicator) Draw(screen *ebiten.Image, progress float64, measures int) {
	vector.StrokeRect(screen, i.X, i.Y, rotationBarWidth, rotationBarHeight, borderWidth, borderColor, true)

	if progress > 1 {
		progress = 1
	}
	fillWidth := float32(float64(rotationBarWidth-borderWidth*2) * progress)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, rotationBarHeight-borderWidth*2, barColorFill, true)
	}

	current := measureOf(progress, measures)
	rectY := i.Y + rotationBarHeight + 10
	for j := 0; j < measures; j++ {
		rectX := i.X + float32(j)*(measureRectWidth+measureRectGap)
		vector.StrokeRect(screen, rectX, rectY, measureRectWidth, measureRectHeight, borderWidth, borderColor, true)
		if j <= current {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, measureRectWidth-borderWidth*2, measureRectHeight-borderWidth*2, barColorFill, true)
		}
	}
}
