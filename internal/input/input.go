// internal/input/input.go
package input

import (
	"math"

	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
)

// BodyInput is the per-tick movement intent for a tank chassis, produced by
// the player or by whatever drives a non-player tank.
type BodyInput struct {
	Forward  float64 // [0, 1]
	Backward float64 // [0, 1]
	Rotate   float64 // [-1, 1], positive is counter-clockwise
}

// NewBodyInput clamps each axis into range. NaN reads as no input.
func NewBodyInput(forward, backward, rotate float64) BodyInput {
	return BodyInput{
		Forward:  clampAxis(forward, 0, 1),
		Backward: clampAxis(backward, 0, 1),
		Rotate:   clampAxis(rotate, -1, 1),
	}
}

// GunInput is the per-tick aim and trigger intent.
type GunInput struct {
	Angle float64 // desired world angle, [0, 2π)
	Shoot bool
}

// NewGunInput wraps angle into [0, 2π).
func NewGunInput(angle float64, shoot bool) GunInput {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		angle = 0
	}
	return GunInput{Angle: utils.WrapAngle(angle), Shoot: shoot}
}

func clampAxis(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return utils.Clamp(v, lo, hi)
}

// Pose is what a controller may observe about the tank it drives.
type Pose struct {
	Position    geom.Vec2
	Orientation float64 // body, world frame
	GunAngle    float64 // gun, world frame
}

// Controller produces intent for one tank each tick.
type Controller interface {
	Control(pose Pose) (BodyInput, GunInput)
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(pose Pose) (BodyInput, GunInput)

func (f ControllerFunc) Control(pose Pose) (BodyInput, GunInput) {
	return f(pose)
}

// Static replays the same intent every tick.
type Static struct {
	Body BodyInput
	Gun  GunInput
}

func (s Static) Control(Pose) (BodyInput, GunInput) {
	return s.Body, s.Gun
}

// AimAt returns the world angle from 'from' toward 'target'.
func AimAt(from, target geom.Vec2) float64 {
	return target.Sub(from).Angle()
}
