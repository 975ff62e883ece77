// internal/ui/marker.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Marker is a circle that pulses briefly whenever it is moved.
type Marker struct {
	X, Y      float32
	Radius    float32
	Color     rl.Color
	Visible   bool
	movedTime time.Time
}

func NewMarker(radius float32, clr rl.Color) *Marker {
	return &Marker{Radius: radius, Color: clr}
}

// MoveTo shows the marker at the given pixel position.
func (m *Marker) MoveTo(x, y float32) {
	m.X, m.Y = x, y
	m.Visible = true
	m.movedTime = time.Now()
}

func (m *Marker) Hide() {
	m.Visible = false
}

func (m *Marker) Draw() {
	if !m.Visible {
		return
	}
	elapsed := time.Since(m.movedTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := m.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(m.X, m.Y), r, m.Color)
	rl.DrawCircleLines(int32(m.X), int32(m.Y), r, rl.White)
}
