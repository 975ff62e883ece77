// internal/component/projectile.go
package component

import "go-tank-arena/internal/types"

// Bullet marks a projectile and remembers who fired it, so that a tank is
// never killed by its own shot.
type Bullet struct {
	Shooter types.EntityID
}
