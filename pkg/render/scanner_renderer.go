// pkg/render/scanner_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// beamWidth is the angular width of the drawn beam wedge in degrees.
const beamWidth = 6.0

// ScannerRenderer draws the round field: axes, spawn paths, the beam and
// every entity of a snapshot. World Y points up, screen Y points down.
type ScannerRenderer struct {
	centerX, centerY float64
	scale            float64
	fillImg          *ebiten.Image
	fillVs           []ebiten.Vertex
	fillIs           []uint16
	fontFace         font.Face
	colors           *ScannerColors
}

func NewScannerRenderer(screenWidth, screenHeight int, scale float64, face font.Face, colors *ScannerColors) *ScannerRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &ScannerRenderer{
		centerX:  float64(screenWidth) / 2,
		centerY:  float64(screenHeight) / 2,
		scale:    scale,
		fillImg:  fillImg,
		fontFace: face,
		colors:   colors,
	}
}

// WorldToScreen maps a ground-plane point to pixels.
func (r *ScannerRenderer) WorldToScreen(x, y float64) (float32, float32) {
	return float32(r.centerX + x*r.scale), float32(r.centerY - y*r.scale)
}

// ScreenToWorld maps a pixel to the ground plane.
func (r *ScannerRenderer) ScreenToWorld(sx, sy int) (float64, float64) {
	return (float64(sx) - r.centerX) / r.scale, (r.centerY - float64(sy)) / r.scale
}

// Draw renders one frame. hovered is highlighted with its range.
func (r *ScannerRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, level *defs.LevelDefinition, hovered types.EntityID) {
	screen.Fill(r.colors.Background)

	r.drawPaths(screen, level)
	r.drawAxes(screen, snap, level)
	r.drawBeam(screen, snap)

	bx, by := r.WorldToScreen(0, 0)
	vector.DrawFilledCircle(screen, bx, by, float32(config.BaseRadius), DarkenColor(r.colors.Base), true)
	vector.StrokeCircle(screen, bx, by, float32(config.BaseRadius), 2, r.colors.Base, true)

	for _, t := range snap.Towers {
		r.drawTower(screen, t, t.ID == hovered)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		px, py := r.WorldToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, px, py, float32(config.ProjectileRadius), r.colors.Projectile, true)
	}
}

func (r *ScannerRenderer) drawPaths(screen *ebiten.Image, level *defs.LevelDefinition) {
	for _, points := range level.SpawnPoints {
		for i := 1; i < len(points); i++ {
			x0, y0 := r.WorldToScreen(points[i-1].X, points[i-1].Y)
			x1, y1 := r.WorldToScreen(points[i].X, points[i].Y)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, r.colors.Path, true)
		}
		if len(points) > 0 {
			sx, sy := r.WorldToScreen(points[0].X, points[0].Y)
			vector.StrokeCircle(screen, sx, sy, float32(config.EnemyRadius)+4, 2, r.colors.Path, true)
		}
	}
}

func (r *ScannerRenderer) drawAxes(screen *ebiten.Image, snap app.Snapshot, level *defs.LevelDefinition) {
	if snap.AxisCount == 0 {
		return
	}
	step := 2 * math.Pi / float64(snap.AxisCount)
	for i := 0; i < snap.AxisCount; i++ {
		dx, dy := math.Cos(step*float64(i)), math.Sin(step*float64(i))
		x0, y0 := r.WorldToScreen(dx*snap.MinAxis, dy*snap.MinAxis)
		x1, y1 := r.WorldToScreen(dx*snap.MaxAxis, dy*snap.MaxAxis)
		axisColor := r.colors.Axis
		if i == snap.NextSector && snap.Running {
			axisColor = BlendColor(axisColor, r.colors.Beam, 0.5)
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, axisColor, true)

		for slot := 0; slot < level.SlotsPerAxis; slot++ {
			rad := level.SlotRadius(slot)
			sx, sy := r.WorldToScreen(dx*rad, dy*rad)
			vector.StrokeCircle(screen, sx, sy, float32(config.TowerRadius)+3, 1, r.colors.Slot, true)
		}
	}
}

// drawBeam fills a thin wedge trailing the heading.
func (r *ScannerRenderer) drawBeam(screen *ebiten.Image, snap app.Snapshot) {
	heading := snap.Heading * math.Pi / 180
	width := beamWidth * math.Pi / 180
	reach := snap.MaxAxis + 1

	path := vector.Path{}
	cx, cy := r.WorldToScreen(0, 0)
	path.MoveTo(cx, cy)
	for _, a := range []float64{heading - width, heading - width/2, heading} {
		px, py := r.WorldToScreen(math.Cos(a)*reach, math.Sin(a)*reach)
		path.LineTo(px, py)
	}
	path.Close()

	beam := r.colors.Beam
	if !snap.Running {
		beam = WithAlpha(beam, beam.A/3)
	}
	r.fillPath(screen, &path, beam)
}

func (r *ScannerRenderer) fillPath(target *ebiten.Image, path *vector.Path, fill color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fill.R) / 255
		r.fillVs[i].ColorG = float32(fill.G) / 255
		r.fillVs[i].ColorB = float32(fill.B) / 255
		r.fillVs[i].ColorA = float32(fill.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *ScannerRenderer) drawTower(screen *ebiten.Image, t app.TowerView, hovered bool) {
	x, y := r.WorldToScreen(t.X, t.Y)
	fill, ok := r.colors.Towers[t.Kind]
	if !ok {
		fill = r.colors.Stroke
	}
	if hovered {
		vector.StrokeCircle(screen, x, y, float32(t.Range*r.scale), 1, WithAlpha(fill, 140), true)
	}
	vector.DrawFilledCircle(screen, x, y, float32(config.TowerRadius)+2, r.colors.Stroke, true)
	vector.DrawFilledCircle(screen, x, y, float32(config.TowerRadius), fill, true)
	if !t.Refundable {
		vector.DrawFilledCircle(screen, x, y, float32(config.TowerRadius)/3, DarkenColor(fill), true)
	}
	for lvl := 0; lvl < t.Level; lvl++ {
		px := x - float32(config.TowerRadius) + float32(lvl)*6
		vector.DrawFilledRect(screen, px, y+float32(config.TowerRadius)+3, 4, 4, r.colors.Stroke, false)
	}
}

func (r *ScannerRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := r.WorldToScreen(e.X, e.Y)
	radius := float32(config.EnemyRadius)
	fill := r.colors.Enemy
	if e.Z < 0 {
		// Below ground: smaller and dimmer the deeper it is.
		depth := math.Min(-e.Z, 1)
		radius *= float32(1 - 0.5*depth)
		fill = r.colors.EnemyHidden
	}
	if e.State == "dead" {
		fill = WithAlpha(DarkenColor(fill), 120)
	}
	fill = BlendColor(fill, r.colors.Stroke, e.Flash)

	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.colors.Slowed, true)
	}

	if e.MaxHealth > 0 && e.Health < e.MaxHealth && e.State != "dead" {
		w := radius * 2
		frac := float32(e.Health / e.MaxHealth)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, DarkenColor(r.colors.Enemy), false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*frac, 3, r.colors.Base, false)
	}
}

// DrawLabel writes text at a screen position.
func (r *ScannerRenderer) DrawLabel(screen *ebiten.Image, x, y int, format string, args ...interface{}) {
	text.Draw(screen, fmt.Sprintf(format, args...), r.fontFace, x, y, r.colors.Text)
}
