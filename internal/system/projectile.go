// internal/system/projectile.go
package system

import (
	"math"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"
)

// HitResolver applies the outcome of bullet contacts.
type HitResolver interface {
	ResolveHit(bullet, tank types.EntityID) bool
	RemoveBullet(bullet types.EntityID)
}

// ProjectileSystem moves bullets in straight lines, removes them when they
// enter a Wall cell or leave the grid, and reports overlaps with tanks to
// the resolver. Like MovementSystem it belongs to the host loop.
type ProjectileSystem struct {
	ecs  *entity.ECS
	grid *gridmap.Grid
	hits HitResolver
}

func NewProjectileSystem(ecs *entity.ECS, grid *gridmap.Grid, hits HitResolver) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, grid: grid, hits: hits}
}

// Update advances every bullet by deltaTime. Travel is split into steps of
// at most config.BulletMaxStep so a fast bullet cannot skip a one-cell wall
// or a tank between frames.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for id := range s.ecs.Bullets {
		pos, ok := s.ecs.Positions[id]
		vel, okVel := s.ecs.Velocities[id]
		if !ok || !okVel {
			s.hits.RemoveBullet(id)
			continue
		}

		travel := vel.Linear.Scale(deltaTime)
		steps := 1
		if d := travel.Len(); d > config.BulletMaxStep && !math.IsInf(d, 1) {
			steps = int(math.Ceil(d / config.BulletMaxStep))
		}
		step := travel.Scale(1 / float64(steps))
		for i := 0; i < steps; i++ {
			pos.Vec2 = pos.Vec2.Add(step)
			if !s.advance(id, pos.Vec2) {
				break
			}
		}
	}
}

// advance checks the bullet at p against walls and tanks. It reports false
// once the bullet is gone.
func (s *ProjectileSystem) advance(id types.EntityID, p geom.Vec2) bool {
	cell := gridmap.CellAt(p)
	if !s.grid.InBounds(cell) || s.grid.At(cell) == gridmap.Wall {
		s.hits.RemoveBullet(id)
		return false
	}

	half, _ := s.ecs.HalfExtent(id)
	for tank := range s.ecs.TankBodies {
		tp, ok := s.ecs.Positions[tank]
		tc, okCol := s.ecs.Colliders[tank]
		if !ok || !okCol || !Overlaps(p, half, tp.Vec2, tc.HalfExtent) {
			continue
		}
		// a tank overlapping its own fresh bullet is not a hit, keep looking
		if s.hits.ResolveHit(id, tank) {
			return false
		}
	}
	return true
}
