package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	assert.Equal(t, black, BlendColor(black, white, -1))
	assert.Equal(t, white, BlendColor(black, white, 2))
	assert.Equal(t, color.RGBA{127, 127, 127, 255}, BlendColor(black, white, 0.5))
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 0, 200}, DarkenColor(color.RGBA{100, 50, 0, 200}))
	assert.Equal(t, uint8(10), WithAlpha(color.RGBA{1, 2, 3, 4}, 10).A)
}

func TestScreenMapping(t *testing.T) {
	r := &ScannerRenderer{centerX: 100, centerY: 50, scale: 10}

	sx, sy := r.WorldToScreen(2, 3)
	assert.Equal(t, float32(120), sx)
	assert.Equal(t, float32(20), sy)

	x, y := r.ScreenToWorld(120, 20)
	assert.InDelta(t, 2.0, x, 1e-9)
	assert.InDelta(t, 3.0, y, 1e-9)
}
