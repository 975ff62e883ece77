// internal/component/turret.go
package component

import (
	"time"

	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
)

// Turret is the gun mounted on a tank. Its angle is stored relative to the
// carrying body, so it turns with the chassis.
type Turret struct {
	// Parent is the tank carrying the gun.
	Parent types.EntityID
	// LocalAngle is the angle relative to the parent, in [0, 2π).
	LocalAngle float64
	// Ammo is kept within [0, MaxAmmo].
	Ammo    int
	MaxAmmo int
	// ReloadElapsed is the time accumulated toward the next round. Whole
	// nanoseconds, so repeated frame deltas add up exactly.
	ReloadElapsed time.Duration
}

// NewTurret returns a fully loaded turret mounted on parent.
func NewTurret(parent types.EntityID, maxAmmo int) *Turret {
	if maxAmmo < 0 {
		maxAmmo = 0
	}
	return &Turret{
		Parent:  parent,
		Ammo:    maxAmmo,
		MaxAmmo: maxAmmo,
	}
}

// WorldAngle composes a body-relative angle with the parent's orientation.
func WorldAngle(parentOrientation, localAngle float64) float64 {
	return utils.WrapAngle(parentOrientation + localAngle)
}
