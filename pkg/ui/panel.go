package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel stacks widgets vertically inside a titled box. It grows with its content.
type Panel struct {
	X, Y    float64
	Width   float64
	Title   string
	Widgets []Widget

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel
func NewPanel(title string, x, y, width float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 200},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// Add appends w below the last widget.
func (p *Panel) Add(w Widget) {
	w.MoveTo(p.X+10, p.Y+p.Height()-10)
	p.Widgets = append(p.Widgets, w)
}

// Height is the title bar plus every widget.
func (p *Panel) Height() float64 {
	h := 30.0
	for _, w := range p.Widgets {
		h += w.Height()
	}
	return h + 10
}

// Update handles input for all widgets
func (p *Panel) Update() {
	for _, w := range p.Widgets {
		w.Update()
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	h := p.Height()
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))
	for _, w := range p.Widgets {
		w.Draw(screen)
	}
}
