// Package render maps the unit-square simulation onto a fixed-resolution
// RGBA framebuffer. It knows nothing about windows or presentation.
package render

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/ants"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/geometry"
)

var (
	Background = color.RGBA{A: 0xFF}
	AntColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Frame is a row-major RGBA8 pixel buffer, the layout ebiten.Image.WritePixels expects.
type Frame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates a frame cleared to Background.
func NewFrame(width, height int) *Frame {
	f := &Frame{Width: width, Height: height, Pix: make([]byte, width*height*4)}
	f.Clear()
	return f
}

// Clear fills the whole frame with Background.
func (f *Frame) Clear() {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = Background.R, Background.G, Background.B, Background.A
	}
}

// At returns the colour of pixel (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	i := (y*f.Width + x) * 4
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// Set paints pixel (x, y). Out of range coordinates are ignored.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = c.R, c.G, c.B, c.A
}

// Cell maps a unit-square position to its pixel. The X axis is mirrored.
// ok is false when the position falls outside the grid, which happens for
// ants caught mid-bounce.
func (f *Frame) Cell(p geometry.Vector) (x, y int, ok bool) {
	fx := float64(f.Width) - p.X*float64(f.Width)
	fy := p.Y * float64(f.Height)
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	x, y = int(fx), int(fy)
	return x, y, x < f.Width && y < f.Height
}

// PheromoneColor is a grey level proportional to the remaining power.
func PheromoneColor(pow float64) color.RGBA {
	v := uint8(min(max(pow, 0), 1) * 128)
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}

// Paint clears the frame then draws pheromones, then ants on top of them.
// antShade scales the ant colour, 1 is full white.
func Paint(f *Frame, colony []ants.Ant, pheromones []ants.Pheromone, antShade float64) {
	f.Clear()
	for _, p := range pheromones {
		if x, y, ok := f.Cell(p.Pos); ok {
			f.Set(x, y, PheromoneColor(p.Pow))
		}
	}
	shade := min(max(antShade, 0), 1)
	c := color.RGBA{
		R: uint8(float64(AntColor.R) * shade),
		G: uint8(float64(AntColor.G) * shade),
		B: uint8(float64(AntColor.B) * shade),
		A: 0xFF,
	}
	for _, a := range colony {
		if x, y, ok := f.Cell(a.Pos); ok {
			f.Set(x, y, c)
		}
	}
}
