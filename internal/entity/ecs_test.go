// internal/entity/ecs_test.go
package entity

import (
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity_IDsAreUniqueAndNonZero(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()

	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

func TestRemoveEntity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Colliders[id] = &component.Collider{}
	ecs.TankBodies[id] = &component.TankBody{Name: "Troy"}
	ecs.Renderables[id] = &component.Renderable{}

	other := ecs.NewEntity()
	ecs.Positions[other] = &component.Position{}

	ecs.RemoveEntity(id)

	assert.Empty(t, ecs.TankBodies)
	assert.Empty(t, ecs.Colliders)
	assert.Empty(t, ecs.Velocities)
	assert.Empty(t, ecs.Renderables)
	assert.Len(t, ecs.Positions, 1)
}

func TestHalfExtent(t *testing.T) {
	ecs := NewECS()
	tank := ecs.NewEntity()
	ecs.Colliders[tank] = &component.Collider{HalfExtent: geom.Vec2{X: 0.5, Y: 0.4}}

	he, ok := ecs.HalfExtent(tank)
	require.True(t, ok)
	assert.Equal(t, geom.Vec2{X: 0.5, Y: 0.4}, he)

	_, ok = ecs.HalfExtent(tank + 1)
	assert.False(t, ok)
}
