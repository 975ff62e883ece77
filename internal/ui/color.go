// internal/ui/color.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorToRL converts a color.Color to rl.Color.
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
