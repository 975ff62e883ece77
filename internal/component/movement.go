// internal/component/movement.go
package component

import "go-tank-arena/pkg/geom"

// Position is the world position of an entity, in world units.
type Position struct {
	geom.Vec2
}

// Velocity is the linear velocity handed to the physics collaborator.
type Velocity struct {
	Linear geom.Vec2
}

// Collider is the axis-aligned box the physics collaborator uses for the entity.
type Collider struct {
	HalfExtent geom.Vec2
}
