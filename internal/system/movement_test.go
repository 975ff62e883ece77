// internal/system/movement_test.go
package system

import (
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"

	"github.com/stretchr/testify/assert"
)

func addMovingTank(ecs *entity.ECS, at, vel geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Velocities[id] = &component.Velocity{Linear: vel}
	ecs.Colliders[id] = &component.Collider{HalfExtent: geom.Vec2{X: 0.5, Y: 0.5}}
	ecs.TankBodies[id] = &component.TankBody{}
	return id
}

func TestMovementSystem_IntegratesVelocity(t *testing.T) {
	ecs := entity.NewECS()
	grid := gridmap.NewGrid(10, 10)
	id := addMovingTank(ecs, geom.Vec2{X: 4.5, Y: 4.5}, geom.Vec2{X: 1, Y: -2})

	NewMovementSystem(ecs, grid).Update(0.25)

	assert.InDelta(t, 4.75, ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 4.0, ecs.Positions[id].Y, 1e-9)
}

func TestMovementSystem_WallBlocksOneAxis(t *testing.T) {
	ecs := entity.NewECS()
	grid := gridmap.NewGrid(10, 10)
	// border wall at x=0; the tank touches x=1.0 and pushes left and up
	id := addMovingTank(ecs, geom.Vec2{X: 1.5, Y: 4.5}, geom.Vec2{X: -2, Y: 2})

	NewMovementSystem(ecs, grid).Update(0.1)

	assert.InDelta(t, 1.5, ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 4.7, ecs.Positions[id].Y, 1e-9)
}

func TestMovementSystem_TanksBlockEachOther(t *testing.T) {
	ecs := entity.NewECS()
	grid := gridmap.NewGrid(10, 10)
	mover := addMovingTank(ecs, geom.Vec2{X: 3.5, Y: 4.5}, geom.Vec2{X: 2, Y: 0})
	addMovingTank(ecs, geom.Vec2{X: 4.6, Y: 4.5}, geom.Vec2{})

	NewMovementSystem(ecs, grid).Update(0.1)

	assert.InDelta(t, 3.5, ecs.Positions[mover].X, 1e-9)
}

func TestBoxHitsWall(t *testing.T) {
	grid := gridmap.NewGrid(6, 6)
	half := geom.Vec2{X: 0.5, Y: 0.5}

	assert.False(t, BoxHitsWall(grid, geom.Vec2{X: 1.5, Y: 1.5}, half), "box exactly fills an Air cell")
	assert.True(t, BoxHitsWall(grid, geom.Vec2{X: 1.49, Y: 1.5}, half))
	assert.True(t, BoxHitsWall(grid, geom.Vec2{X: -3, Y: 2}, half))
}

func TestOverlaps(t *testing.T) {
	h := geom.Vec2{X: 0.5, Y: 0.5}
	assert.True(t, Overlaps(geom.Vec2{}, h, geom.Vec2{X: 0.9}, h))
	assert.False(t, Overlaps(geom.Vec2{}, h, geom.Vec2{X: 1}, h), "touching edges do not overlap")
	assert.False(t, Overlaps(geom.Vec2{}, h, geom.Vec2{X: 0.5, Y: 2}, h))
}
