// internal/system/turret_test.go
package system

import (
	"math"
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gunStep = utils.Radians(220)

func TestAimTurret_AlreadyOnTarget(t *testing.T) {
	turret := &component.Turret{LocalAngle: 1.0}

	AimTurret(0.1, 1.0, 0, turret)

	assert.Equal(t, 1.0, turret.LocalAngle)
}

func TestAimTurret_DesiredTakenModuloTwoPi(t *testing.T) {
	turret := &component.Turret{LocalAngle: 1.0}

	AimTurret(0.1, 1.0+4*math.Pi, 0, turret)

	assert.InDelta(t, 1.0, turret.LocalAngle, 1e-9)
}

func TestAimTurret_StepIsRateLimited(t *testing.T) {
	turret := &component.Turret{}

	AimTurret(0.1, math.Pi/2, 0, turret)

	assert.InDelta(t, gunStep*0.1, turret.LocalAngle, 1e-9)
}

func TestAimTurret_SnapsWhenWithinOneStep(t *testing.T) {
	turret := &component.Turret{}

	AimTurret(1.0, 0.3, 0, turret)

	assert.InDelta(t, 0.3, turret.LocalAngle, 1e-9)
}

func TestAimTurret_TakesShortestArcAcrossZero(t *testing.T) {
	turret := &component.Turret{LocalAngle: 0.1}

	AimTurret(0.01, utils.TwoPi-0.1, 0, turret)

	// turns clockwise through zero rather than the long way round
	want := utils.WrapAngle(0.1 - gunStep*0.01)
	assert.InDelta(t, want, turret.LocalAngle, 1e-9)
}

func TestAimTurret_RelativeToParent(t *testing.T) {
	// body faces north; the gun points east in the world, so local is -π/2
	body := math.Pi / 2
	turret := &component.Turret{LocalAngle: 1.5 * math.Pi}

	AimTurret(10, math.Pi, body, turret)

	assert.InDelta(t, math.Pi, component.WorldAngle(body, turret.LocalAngle), 1e-9)
	assert.InDelta(t, math.Pi/2, turret.LocalAngle, 1e-9)
}

func TestAimTurret_ConvergesAndStays(t *testing.T) {
	turret := &component.Turret{}
	desired := 2.5

	for i := 0; i < 100; i++ {
		before := turret.LocalAngle
		AimTurret(1.0/60, desired, 0, turret)
		moved := utils.AngleBetween(before, turret.LocalAngle)
		require.LessOrEqual(t, moved, gunStep/60+1e-9)
		require.GreaterOrEqual(t, turret.LocalAngle, 0.0)
		require.Less(t, turret.LocalAngle, utils.TwoPi)
	}
	assert.InDelta(t, desired, turret.LocalAngle, 1e-9)
}

func TestAimTurret_DegenerateInputsAreSkipped(t *testing.T) {
	turret := &component.Turret{LocalAngle: 0.5}

	AimTurret(0.1, 0.5, math.NaN(), turret)
	assert.Equal(t, 0.5, turret.LocalAngle)

	AimTurret(0.1, math.NaN(), 0, turret)
	assert.Equal(t, 0.5, turret.LocalAngle)

	AimTurret(math.NaN(), 1.0, 0, turret)
	assert.Equal(t, 0.5, turret.LocalAngle)

	AimTurret(0, 1.0, 0, turret)
	assert.Equal(t, 0.5, turret.LocalAngle)
}

func TestTurretSystem_AimAndWorldPose(t *testing.T) {
	ecs := entity.NewECS()
	tank := ecs.NewEntity()
	gun := ecs.NewEntity()
	ecs.TankBodies[tank] = &component.TankBody{Orientation: math.Pi / 2}
	ecs.Positions[tank] = &component.Position{Vec2: geom.Vec2{X: 3, Y: 4}}
	ecs.Turrets[gun] = component.NewTurret(tank, 5)

	s := NewTurretSystem(ecs)
	require.True(t, s.Aim(gun, math.Pi, 10))

	pos, angle, ok := s.WorldPose(gun)
	require.True(t, ok)
	assert.Equal(t, geom.Vec2{X: 3, Y: 4}, pos)
	assert.InDelta(t, math.Pi, angle, 1e-9)

	assert.False(t, s.Aim(tank, 0, 1))
	delete(ecs.TankBodies, tank)
	assert.False(t, s.Aim(gun, 0, 1))
	_, _, ok = s.WorldPose(gun)
	assert.False(t, ok)
}
