package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider picks a whole number in [Min, Max] by dragging.
type Slider struct {
	rect
	Label    string
	Value    int
	Min, Max int
	changed  bool
}

// NewSlider creates a slider of the given width. value is clamped to [lo, hi].
func NewSlider(label string, width float64, lo, hi, value int) *Slider {
	s := &Slider{rect: rect{W: width, H: 12}, Label: label, Min: lo, Max: hi}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v int) int {
	return max(s.Min, min(s.Max, v))
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || !s.contains(mx, my) {
		return
	}
	p := (float64(mx) - s.X) / s.W
	v := s.clamp(s.Min + int(math.Round(p*float64(s.Max-s.Min))))
	if v != s.Value {
		s.Value = v
		s.changed = true
	}
}

// Changed reports whether Value moved since the previous call.
func (s *Slider) Changed() bool {
	c := s.changed
	s.changed = false
	return c
}

// Draw renders the label, the track and the filled part.
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", s.Label, s.Value), int(s.X), int(s.Y)-16)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), trackColor, true)
	ratio := 1.0
	if s.Max > s.Min {
		ratio = float64(s.Value-s.Min) / float64(s.Max-s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), fillColor, true)
}

func (s *Slider) Height() float64 { return s.H + 22 }

func (s *Slider) MoveTo(x, y float64) { s.X, s.Y = x, y+16 }
