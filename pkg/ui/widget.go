package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	trackColor  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	fillColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	borderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkColor  = color.RGBA{R: 100, G: 200, B: 100, A: 255}
)

// Widget is anything the Panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	MoveTo(x, y float64)
}

// rect is the clickable area shared by all widgets.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(mx, my int) bool {
	x, y := float64(mx), float64(my)
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// click reports a fresh left press inside r. held keeps a press from firing
// again on every frame while the button stays down.
func (r rect) click(held *bool) bool {
	mx, my := ebiten.CursorPosition()
	if r.contains(mx, my) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if *held {
			return false
		}
		*held = true
		return true
	}
	*held = false
	return false
}
