// internal/system/tank.go
package system

import (
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
)

// UpdateTankBody advances one chassis by dt seconds and returns the velocity
// the physics collaborator should apply.
func UpdateTankBody(dt float64, in input.BodyInput, body *component.TankBody) geom.Vec2 {
	if in.Rotate != 0 {
		body.Orientation = utils.WrapAngle(body.Orientation + in.Rotate*utils.Radians(config.TankRotateRateDegs)*dt)
	}

	accelerating := false
	if in.Forward != 0 {
		body.Speed += in.Forward * config.TankAcceleration * dt
		accelerating = true
	}
	if in.Backward != 0 {
		body.Speed -= in.Backward * config.TankAcceleration * dt
		accelerating = true
	}

	// coast toward zero without crossing it
	if !accelerating {
		decrease := utils.Clamp(config.TankBraking*dt, 0, math.Abs(body.Speed))
		body.Speed -= math.Copysign(decrease, body.Speed)
	}

	body.Speed = utils.Clamp(body.Speed, -config.MaxTankSpeed, config.MaxTankSpeed)

	return geom.FromAngle(body.Orientation).Scale(body.Speed)
}

// TankBodySystem applies movement intent to tanks stored in the ECS.
type TankBodySystem struct {
	ecs *entity.ECS
}

func NewTankBodySystem(ecs *entity.ECS) *TankBodySystem {
	return &TankBodySystem{ecs: ecs}
}

// Drive updates tank id with in and stores the resulting velocity. It
// reports false when id is not a tank.
func (s *TankBodySystem) Drive(id types.EntityID, in input.BodyInput, dt float64) bool {
	body, ok := s.ecs.TankBodies[id]
	if !ok {
		return false
	}
	vel := UpdateTankBody(dt, in, body)
	if v, ok := s.ecs.Velocities[id]; ok {
		v.Linear = vel
	} else {
		s.ecs.Velocities[id] = &component.Velocity{Linear: vel}
	}
	return true
}
