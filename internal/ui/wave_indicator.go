package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Color        color.Color
	LastColor    color.Color // цвет последней волны уровня
	OutlineColor color.Color
	face         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, face font.Face, c, last color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        c,
		LastColor:    last,
		OutlineColor: color.White,
		face:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает номер волны и общее число волн.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave) + " / " + toRoman(total)

	textColor := i.Color
	if wave == total {
		textColor = i.LastColor
	}

	// Центрируем текст
	bounds := text.BoundString(i.face, label)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y)

	// Обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, y, textColor)
}
