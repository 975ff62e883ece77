// internal/system/turret.go
package system

import (
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
)

// AimTurret turns the gun toward desired (world frame) by at most
// config.GunRotateRateDegs*dt along the shortest arc. Only the increment is
// added to the turret's body-relative angle, so the chassis orientation is
// left alone. Zero or NaN error skips the tick.
func AimTurret(dt, desired, parentOrientation float64, turret *component.Turret) {
	desired = utils.WrapAngle(desired)
	current := component.WorldAngle(parentOrientation, turret.LocalAngle)

	angularError := utils.AngleBetween(current, desired)
	if angularError == 0 || math.IsNaN(angularError) {
		return
	}

	maxStep := utils.Radians(config.GunRotateRateDegs) * dt
	f := utils.Clamp(maxStep/angularError, 0, 1)

	rotated := utils.LerpAngle(current, desired, f)
	step := utils.ShortestArc(current, rotated)
	if math.IsNaN(step) {
		return
	}
	turret.LocalAngle = utils.WrapAngle(turret.LocalAngle + step)
}

// TurretSystem aims turrets stored in the ECS.
type TurretSystem struct {
	ecs *entity.ECS
}

func NewTurretSystem(ecs *entity.ECS) *TurretSystem {
	return &TurretSystem{ecs: ecs}
}

// Aim turns turret id toward the world angle desired. It reports false when
// id is not a turret or its parent tank is gone.
func (s *TurretSystem) Aim(id types.EntityID, desired, dt float64) bool {
	turret, ok := s.ecs.Turrets[id]
	if !ok {
		return false
	}
	body, ok := s.ecs.TankBodies[turret.Parent]
	if !ok {
		return false
	}
	AimTurret(dt, desired, body.Orientation, turret)
	return true
}

// WorldPose returns the world position and angle of turret id. The gun sits
// at its parent's origin.
func (s *TurretSystem) WorldPose(id types.EntityID) (geom.Vec2, float64, bool) {
	turret, ok := s.ecs.Turrets[id]
	if !ok {
		return geom.Vec2{}, 0, false
	}
	body, ok := s.ecs.TankBodies[turret.Parent]
	if !ok {
		return geom.Vec2{}, 0, false
	}
	var pos geom.Vec2
	if p, ok := s.ecs.Positions[turret.Parent]; ok {
		pos = p.Vec2
	}
	return pos, component.WorldAngle(body.Orientation, turret.LocalAngle), true
}
