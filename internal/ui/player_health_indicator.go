// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
)

var (
	healthHighColor = color.RGBA{50, 100, 255, 255}
	healthLowColor  = color.RGBA{230, 40, 40, 255}
	healthEmpty     = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// cellColor picks the color of health cell j. While more than half the
// health is left the surplus cells are blue, the rest red.
func cellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthEmpty
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return healthHighColor
	}
	return healthLowColor
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	cell := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + float32(col)*cell + HealthCircleRadius
		cy := i.Y + float32(row)*cell + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, cellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-6, color.White)
}
