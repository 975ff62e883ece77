// internal/entity/ecs.go
package entity

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"
)

// ECS owns every per-entity component of the arena. Systems borrow
// components for one tick and keep nothing between ticks.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Colliders   map[types.EntityID]*component.Collider
	TankBodies  map[types.EntityID]*component.TankBody
	Turrets     map[types.EntityID]*component.Turret
	Bullets     map[types.EntityID]*component.Bullet
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Colliders:   make(map[types.EntityID]*component.Collider),
		TankBodies:  make(map[types.EntityID]*component.TankBody),
		Turrets:     make(map[types.EntityID]*component.Turret),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.TankBodies, id)
	delete(ecs.Turrets, id)
	delete(ecs.Bullets, id)
	delete(ecs.Renderables, id)
}

// HalfExtent returns the collider half extent of id.
func (ecs *ECS) HalfExtent(id types.EntityID) (geom.Vec2, bool) {
	c, ok := ecs.Colliders[id]
	if !ok {
		return geom.Vec2{}, false
	}
	return c.HalfExtent, true
}
