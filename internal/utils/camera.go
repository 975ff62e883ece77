// internal/utils/camera.go
package utils

import "go-tank-arena/pkg/geom"

// Camera maps world units (y up) to screen pixels (y down). It shows
// ViewHeight world units vertically, centred on Center.
type Camera struct {
	Center       geom.Vec2
	ViewHeight   float64
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera over a screen of the given size.
func NewCamera(viewHeight float64, screenWidth, screenHeight int) *Camera {
	return &Camera{ViewHeight: viewHeight, ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

// Scale returns pixels per world unit.
func (c *Camera) Scale() float64 {
	if c.ViewHeight <= 0 {
		return 1
	}
	return float64(c.ScreenHeight) / c.ViewHeight
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p geom.Vec2) (float64, float64) {
	s := c.Scale()
	x := (p.X-c.Center.X)*s + float64(c.ScreenWidth)/2
	y := float64(c.ScreenHeight)/2 - (p.Y-c.Center.Y)*s
	return x, y
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float64) geom.Vec2 {
	s := c.Scale()
	return geom.Vec2{
		X: (x-float64(c.ScreenWidth)/2)/s + c.Center.X,
		Y: (float64(c.ScreenHeight)/2-y)/s + c.Center.Y,
	}
}
