// cmd/tui/view.go
package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-scanner-defense/internal/app"
)

const hudWidth = 30

var (
	styleDefault  = tcell.StyleDefault
	styleAxis     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleNextAxis = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleBeam     = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleBase     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorYellow)

	towerStyles = map[string]tcell.Style{
		"pulse":  tcell.StyleDefault.Foreground(tcell.ColorRed),
		"frost":  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		"sniper": tcell.StyleDefault.Foreground(tcell.ColorLime),
		"mortar": tcell.StyleDefault.Foreground(tcell.ColorPurple),
		"burst":  tcell.StyleDefault.Foreground(tcell.ColorGold),
	}
)

// canvas is the part of tcell.Screen the view writes to.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// field maps the ground plane onto terminal cells. A cell is about twice as
// tall as it is wide, so x is stretched.
type field struct {
	cx, cy int
	scale  float64
}

func newField(width, height int, maxAxis float64) field {
	w := width - hudWidth
	reach := maxAxis + 1
	scale := math.Min(float64(height-2)/(2*reach), float64(w-2)/(4*reach))
	if scale < 0.5 {
		scale = 0.5
	}
	return field{cx: w / 2, cy: height / 2, scale: scale}
}

func (f field) cell(x, y float64) (int, int) {
	return f.cx + int(math.Round(x*f.scale*2)), f.cy - int(math.Round(y*f.scale))
}

// cursor is the build slot picked with the arrow keys.
type cursor struct {
	axis, slot int
}

func drawText(c canvas, x, y int, style tcell.Style, format string, args ...interface{}) {
	for i, r := range fmt.Sprintf(format, args...) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

// drawField renders axes, beam, base and entities.
func drawField(c canvas, snap app.Snapshot, slotRadius func(int) float64, slots int, cur cursor) {
	w, h := c.Size()
	f := newField(w, h, snap.MaxAxis)

	if snap.AxisCount > 0 {
		step := 2 * math.Pi / float64(snap.AxisCount)
		for i := 0; i < snap.AxisCount; i++ {
			dx, dy := math.Cos(step*float64(i)), math.Sin(step*float64(i))
			style := styleAxis
			if i == snap.NextSector && snap.Running {
				style = styleNextAxis
			}
			for r := snap.MinAxis; r <= snap.MaxAxis; r += 0.5 / f.scale {
				x, y := f.cell(dx*r, dy*r)
				c.SetContent(x, y, '·', nil, style)
			}
			for s := 0; s < slots; s++ {
				x, y := f.cell(dx*slotRadius(s), dy*slotRadius(s))
				st := style
				if i == cur.axis && s == cur.slot {
					st = styleCursor
				}
				c.SetContent(x, y, 'o', nil, st)
			}
		}
	}

	heading := snap.Heading * math.Pi / 180
	for r := 1.0; r <= snap.MaxAxis+1; r += 0.5 / f.scale {
		x, y := f.cell(math.Cos(heading)*r, math.Sin(heading)*r)
		c.SetContent(x, y, '*', nil, styleBeam)
	}
	c.SetContent(f.cx, f.cy, '@', nil, styleBase)

	for _, t := range snap.Towers {
		x, y := f.cell(t.X, t.Y)
		style, ok := towerStyles[t.Kind]
		if !ok {
			style = styleDefault
		}
		if t.Axis == cur.axis && t.Slot == cur.slot {
			style = style.Reverse(true)
		}
		c.SetContent(x, y, towerRune(t), nil, style)
	}
	for _, e := range snap.Enemies {
		x, y := f.cell(e.X, e.Y)
		switch {
		case e.State == "dead":
			c.SetContent(x, y, 'x', nil, styleHidden)
		case e.Z < 0:
			c.SetContent(x, y, '.', nil, styleHidden)
		default:
			c.SetContent(x, y, 'E', nil, styleEnemy)
		}
	}
	for _, p := range snap.Projectiles {
		x, y := f.cell(p.X, p.Y)
		c.SetContent(x, y, '+', nil, styleShot)
	}
}

// towerRune is the kind initial, upper-cased once upgraded.
func towerRune(t app.TowerView) rune {
	if t.Kind == "" {
		return '?'
	}
	r := rune(t.Kind[0])
	if t.Level > 0 {
		r -= 'a' - 'A'
	}
	return r
}

// drawHUD prints the status column on the right.
func drawHUD(c canvas, snap app.Snapshot, kind string, cur cursor, message string) {
	w, _ := c.Size()
	x := w - hudWidth + 1
	lines := []string{
		snap.Level,
		"",
		fmt.Sprintf("state   %s", snap.State),
		fmt.Sprintf("wave    %d/%d", snap.Wave, snap.WaveCount),
		fmt.Sprintf("money   %d", snap.Money),
		fmt.Sprintf("points  %d", snap.Points),
		fmt.Sprintf("health  %d", snap.Health),
		fmt.Sprintf("speed   x%.0f", snap.TimeScale),
		fmt.Sprintf("measure %d/%d", int(snap.Rotation*float64(snap.Measures))+1, snap.Measures),
		"",
		fmt.Sprintf("build   %s", kind),
		fmt.Sprintf("cursor  axis %d slot %d", cur.axis, cur.slot),
		"",
		"1-5 kind  arrows move",
		"b build  u upgrade",
		"r refund  space wave",
		"s scanner  +/- speed",
		"n next level  q quit",
	}
	for i, line := range lines {
		drawText(c, x, i+1, styleDefault, "%s", line)
	}
	if message != "" {
		drawText(c, x, len(lines)+2, styleMessage, "%s", message)
	}
}
