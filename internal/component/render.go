// internal/component/render.go
package component

import "image/color"

// Renderable is the draw hint for an entity.
type Renderable struct {
	Color color.RGBA
}
