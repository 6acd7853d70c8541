package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	rect
	Label   string
	Value   bool
	held    bool
	changed bool
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(label string, value bool) *Checkbox {
	return &Checkbox{rect: rect{W: 16, H: 16}, Label: label, Value: value}
}

// Update toggles the value on click.
func (c *Checkbox) Update() {
	if c.click(&c.held) {
		c.Value = !c.Value
		c.changed = true
	}
}

// Changed reports whether Value flipped since the previous call.
func (c *Checkbox) Changed() bool {
	ch := c.changed
	c.changed = false
	return ch
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 2, borderColor, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+2), float32(c.Y+2), float32(c.W-4), float32(c.H-4), checkColor, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.W+6), int(c.Y))
}

func (c *Checkbox) Height() float64 { return c.H + 8 }

func (c *Checkbox) MoveTo(x, y float64) { c.X, c.Y = x, y }
