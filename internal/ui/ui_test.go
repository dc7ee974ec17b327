package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestHealthCellColors(t *testing.T) {
	// 8 of 10: the first 3 cells are surplus
	assert.Equal(t, healthHighColor, cellColor(0, 8, 10))
	assert.Equal(t, healthHighColor, cellColor(2, 8, 10))
	assert.Equal(t, healthLowColor, cellColor(3, 8, 10))
	assert.Equal(t, healthEmpty, cellColor(8, 8, 10))

	// at half health or below everything left is red
	assert.Equal(t, healthLowColor, cellColor(0, 5, 10))
}

func TestMeasureOf(t *testing.T) {
	assert.Equal(t, 0, measureOf(0, 4))
	assert.Equal(t, 1, measureOf(0.25, 4))
	assert.Equal(t, 3, measureOf(0.99, 4))
	assert.Equal(t, 3, measureOf(1, 4))
	assert.Equal(t, 0, measureOf(0.5, 0))
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, []color.Color{color.White, color.Black, color.White}, []float64{1, 2, 4})
	assert.Equal(t, 1.0, b.Multiplier())
	b.ToggleState()
	assert.Equal(t, 2.0, b.Multiplier())
	b.ToggleState()
	b.ToggleState()
	assert.Equal(t, 1.0, b.Multiplier())

	assert.True(t, b.IsClicked(5, 5))
	assert.False(t, b.IsClicked(30, 0))
}

func TestInfoPanelClick(t *testing.T) {
	p := &InfoPanel{
		UpgradeButton: Button{Rect: image.Rect(0, 0, 10, 10)},
		RefundButton:  Button{Rect: image.Rect(20, 0, 30, 10)},
	}
	assert.Equal(t, PanelUpgrade, p.Click(5, 5))
	assert.Equal(t, PanelRefund, p.Click(25, 5))
	assert.Equal(t, PanelNone, p.Click(15, 5))
}
