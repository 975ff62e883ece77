// internal/utils/camera_test.go
package utils

import (
	"testing"

	"go-tank-arena/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestCamera_CenterMapsToScreenMiddle(t *testing.T) {
	cam := NewCamera(20, 1200, 900)
	cam.Center = geom.Vec2{X: 7, Y: 3}

	x, y := cam.WorldToScreen(cam.Center)
	assert.InDelta(t, 600.0, x, 1e-9)
	assert.InDelta(t, 450.0, y, 1e-9)
	assert.InDelta(t, 45.0, cam.Scale(), 1e-9)
}

func TestCamera_YAxisPointsUp(t *testing.T) {
	cam := NewCamera(20, 1200, 900)

	_, yLow := cam.WorldToScreen(geom.Vec2{Y: 0})
	_, yHigh := cam.WorldToScreen(geom.Vec2{Y: 1})
	assert.Less(t, yHigh, yLow)
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := NewCamera(20, 1200, 900)
	cam.Center = geom.Vec2{X: 12.5, Y: -4}

	for _, p := range []geom.Vec2{{X: 0, Y: 0}, {X: 3.25, Y: 9.5}, {X: -10, Y: 2}} {
		x, y := cam.WorldToScreen(p)
		back := cam.ScreenToWorld(x, y)
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}
