// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-scanner-defense/internal/app"
	"go-scanner-defense/internal/config"
	"go-scanner-defense/internal/defs"
	"go-scanner-defense/internal/types"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	btnWidth       = 130
	btnHeight      = 32
)

// PanelAction is what a click on the panel asks for.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelRefund
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel slides up from the bottom edge with details of a selected tower
// or enemy.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	currentY      float64
	targetY       float64
	UpgradeButton Button
	RefundButton  Button
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point is over the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

// Click maps a click inside the panel to an action.
func (p *InfoPanel) Click(x, y int) PanelAction {
	pt := image.Point{X: x, Y: y}
	switch {
	case pt.In(p.UpgradeButton.Rect):
		return PanelUpgrade
	case pt.In(p.RefundButton.Rect):
		return PanelRefund
	}
	return PanelNone
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot, lib *defs.Library) {
	p.UpgradeButton.Rect = image.Rectangle{}
	p.RefundButton.Rect = image.Rectangle{}
	if !p.IsVisible {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+25
	for _, t := range snap.Towers {
		if t.ID == p.TargetEntity {
			p.drawTowerInfo(screen, t, lib, panelRect, x, y)
			return
		}
	}
	for _, e := range snap.Enemies {
		if e.ID == p.TargetEntity {
			p.drawEnemyInfo(screen, e, x, y)
			return
		}
	}
	p.Hide()
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, t app.TowerView, lib *defs.Library, panelRect image.Rectangle, x, y int) {
	def, ok := lib.Tower(defs.TowerKind(t.Kind))
	if !ok {
		return
	}
	text.Draw(screen, fmt.Sprintf("%s  level %d/%d", def.Name, t.Level+1, def.MaxLevel()), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Axis: %d  Range: %.1f", t.Axis, t.Range), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	if t.Level < len(def.AttackPower) {
		text.Draw(screen, fmt.Sprintf("Power: %.0f", def.AttackPower[t.Level]), p.fontFace, x, y, config.TextLightColor)
	}

	if t.Level+1 < def.MaxLevel() {
		p.UpgradeButton = p.drawButton(screen, panelRect, 1, fmt.Sprintf("Upgrade %d", def.UpgradeCost[t.Level]), color.RGBA{R: 60, G: 120, B: 60, A: 255})
	}
	if t.Refundable {
		p.RefundButton = p.drawButton(screen, panelRect, 0, fmt.Sprintf("Refund %d", int(float64(def.Cost)*config.RefundRatio)), color.RGBA{R: 100, G: 60, B: 60, A: 255})
	}
}

func (p *InfoPanel) drawEnemyInfo(screen *ebiten.Image, e app.EnemyView, x, y int) {
	text.Draw(screen, fmt.Sprintf("Enemy %s (%s)", e.Type, e.State), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Health: %.0f / %.0f", e.Health, e.MaxHealth), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	status := "normal"
	if e.Slowed {
		status = "slowed"
	}
	text.Draw(screen, fmt.Sprintf("Travelled: %.1f  %s", e.Travelled, status), p.fontFace, x, y, config.TextLightColor)
}

// drawButton places a button slot positions from the right panel edge.
func (p *InfoPanel) drawButton(screen *ebiten.Image, panelRect image.Rectangle, slot int, label string, fill color.Color) Button {
	right := panelRect.Max.X - 20 - slot*(btnWidth+20)
	b := Button{
		Rect: image.Rect(right-btnWidth, panelRect.Max.Y-btnHeight-20, right, panelRect.Max.Y-20),
		Text: label,
	}
	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y), btnWidth, btnHeight, fill, true)

	bounds := text.BoundString(p.fontFace, b.Text)
	tx := b.Rect.Min.X + (btnWidth-bounds.Dx())/2
	ty := b.Rect.Min.Y + (btnHeight-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, p.fontFace, tx, ty, color.White)
	return b
}
