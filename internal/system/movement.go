// internal/system/movement.go
package system

import (
	"math"

	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"
)

// MovementSystem integrates tank velocities with a plain Euler step. Each
// axis is applied separately and undone when the tank's box would overlap a
// wall or another tank. It is a host-side stand-in for a physics engine and
// is not part of World.Update.
type MovementSystem struct {
	ecs  *entity.ECS
	grid *gridmap.Grid
}

func NewMovementSystem(ecs *entity.ECS, grid *gridmap.Grid) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: grid}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id := range s.ecs.TankBodies {
		pos, ok := s.ecs.Positions[id]
		vel, okVel := s.ecs.Velocities[id]
		col, okCol := s.ecs.Colliders[id]
		if !ok || !okVel || !okCol {
			continue
		}
		step := vel.Linear.Scale(deltaTime)

		if next := (geom.Vec2{X: pos.X + step.X, Y: pos.Y}); !s.blocked(id, next, col.HalfExtent) {
			pos.X = next.X
		}
		if next := (geom.Vec2{X: pos.X, Y: pos.Y + step.Y}); !s.blocked(id, next, col.HalfExtent) {
			pos.Y = next.Y
		}
	}
}

func (s *MovementSystem) blocked(self types.EntityID, center, half geom.Vec2) bool {
	if BoxHitsWall(s.grid, center, half) {
		return true
	}
	for other := range s.ecs.TankBodies {
		if other == self {
			continue
		}
		op, ok := s.ecs.Positions[other]
		oc, okCol := s.ecs.Colliders[other]
		if ok && okCol && Overlaps(center, half, op.Vec2, oc.HalfExtent) {
			return true
		}
	}
	return false
}

// BoxHitsWall reports whether the open box around center touches a Wall
// cell. Cells outside the grid count as Wall.
func BoxHitsWall(grid *gridmap.Grid, center, half geom.Vec2) bool {
	minX := int(math.Floor(center.X - half.X))
	maxX := int(math.Ceil(center.X+half.X)) - 1
	minY := int(math.Floor(center.Y - half.Y))
	maxY := int(math.Ceil(center.Y+half.Y)) - 1
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if grid.At(gridmap.Cell{X: x, Y: y}) == gridmap.Wall {
				return true
			}
		}
	}
	return false
}

// Overlaps tests two open axis-aligned boxes given by centre and half extent.
func Overlaps(a, ha, b, hb geom.Vec2) bool {
	return math.Abs(a.X-b.X) < ha.X+hb.X && math.Abs(a.Y-b.Y) < ha.Y+hb.Y
}
