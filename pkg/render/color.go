// pkg/render/color.go
package render

import "image/color"

// ScannerColors holds every color the scanner field is drawn with.
type ScannerColors struct {
	Background  color.RGBA
	Axis        color.RGBA
	Slot        color.RGBA
	Path        color.RGBA
	Beam        color.RGBA
	Base        color.RGBA
	Enemy       color.RGBA
	EnemyHidden color.RGBA
	Slowed      color.RGBA
	Projectile  color.RGBA
	Stroke      color.RGBA
	Text        color.RGBA
	Towers      map[string]color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// BlendColor mixes a toward b by t in [0, 1].
func BlendColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
