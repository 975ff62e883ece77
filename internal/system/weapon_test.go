// internal/system/weapon_test.go
package system

import (
	"math"
	"testing"
	"time"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFire_EmptyDoesNothing(t *testing.T) {
	turret := &component.Turret{Ammo: 0, MaxAmmo: 5, ReloadElapsed: 300 * time.Millisecond}
	before := *turret

	_, ok := Fire(1, turret, 0, geom.Vec2{}, geom.Vec2{X: 0.5, Y: 0.5})

	assert.False(t, ok)
	assert.Equal(t, before, *turret)
}

func TestFire_FullTurret(t *testing.T) {
	turret := component.NewTurret(9, 5)

	req, ok := Fire(9, turret, 0, geom.Vec2{X: 2, Y: 3}, geom.Vec2{X: 0.5, Y: 0.5})

	require.True(t, ok)
	assert.Equal(t, 4, turret.Ammo)
	assert.Equal(t, types.EntityID(9), req.Owner)
	assert.InDelta(t, config.BulletShootSpeed, req.Velocity.Len(), 1e-9)
	assert.Equal(t, geom.Vec2{X: 0.1, Y: 0.1}, req.HalfExtent)

	radius := (0.5 + 0.1) * math.Sqrt2
	assert.InDelta(t, 2+radius, req.Position.X, 1e-9)
	assert.InDelta(t, 3.0, req.Position.Y, 1e-9)
}

func TestFire_SpawnsOutsideOwnerBox(t *testing.T) {
	owner := geom.Vec2{X: 0.7, Y: 0.3}
	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		turret := component.NewTurret(1, 1)

		req, ok := Fire(1, turret, angle, geom.Vec2{}, owner)
		require.True(t, ok)

		// the bullet box must not overlap the owner box
		overlapX := math.Abs(req.Position.X) < owner.X+req.HalfExtent.X
		overlapY := math.Abs(req.Position.Y) < owner.Y+req.HalfExtent.Y
		assert.False(t, overlapX && overlapY, "angle %v spawns inside the shooter", angle)

		dir := geom.FromAngle(angle)
		assert.InDelta(t, dir.X*config.BulletShootSpeed, req.Velocity.X, 1e-9)
		assert.InDelta(t, dir.Y*config.BulletShootSpeed, req.Velocity.Y, 1e-9)
	}
}

func TestFire_DrainsToZero(t *testing.T) {
	turret := component.NewTurret(1, 3)
	shots := 0
	for i := 0; i < 10; i++ {
		if _, ok := Fire(1, turret, 0, geom.Vec2{}, geom.Vec2{X: 0.5, Y: 0.5}); ok {
			shots++
		}
	}
	assert.Equal(t, 3, shots)
	assert.Equal(t, 0, turret.Ammo)
}

func repeatStep(dt float64, n int) []float64 {
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = dt
	}
	return steps
}

func TestReload_OneRoundPerSecond(t *testing.T) {
	tests := []struct {
		name  string
		steps []float64
	}{
		{"single call", []float64{1.0}},
		{"halves", []float64{0.5, 0.5}},
		{"quarters", []float64{0.25, 0.25, 0.25, 0.25}},
		{"uneven", []float64{0.125, 0.375, 0.5}},
		{"tenths", repeatStep(0.1, 10)},
		{"frames", repeatStep(1.0/60, 60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turret := &component.Turret{Ammo: 2, MaxAmmo: 5}
			for i, dt := range tt.steps {
				Reload(dt, turret)
				if i < len(tt.steps)-1 {
					assert.Equal(t, 2, turret.Ammo, "reloaded early")
				}
			}
			assert.Equal(t, 3, turret.Ammo)
			assert.Less(t, turret.ReloadElapsed, time.Microsecond)
		})
	}
}

func TestReload_CappedAtMax(t *testing.T) {
	turret := &component.Turret{Ammo: 4, MaxAmmo: 5}

	Reload(3.5, turret)

	assert.Equal(t, 5, turret.Ammo)
	assert.Equal(t, 500*time.Millisecond, turret.ReloadElapsed)

	Reload(1.0, turret)
	assert.Equal(t, 5, turret.Ammo)
}

func TestReload_LongRunDoesNotDrift(t *testing.T) {
	turret := &component.Turret{Ammo: 0, MaxAmmo: 1000}

	for i := 0; i < 60*30; i++ {
		Reload(1.0/60, turret)
	}

	assert.Equal(t, 30, turret.Ammo)
}

func TestReload_IgnoresInvalidDelta(t *testing.T) {
	turret := &component.Turret{Ammo: 1, MaxAmmo: 5, ReloadElapsed: 500 * time.Millisecond}

	Reload(-1, turret)
	Reload(0, turret)
	Reload(math.NaN(), turret)
	Reload(math.Inf(1), turret)

	assert.Equal(t, 1, turret.Ammo)
	assert.Equal(t, 500*time.Millisecond, turret.ReloadElapsed)
}

func newArmedECS(t *testing.T) (*entity.ECS, types.EntityID, types.EntityID) {
	t.Helper()
	ecs := entity.NewECS()
	tank := ecs.NewEntity()
	gun := ecs.NewEntity()
	ecs.TankBodies[tank] = &component.TankBody{Orientation: math.Pi / 2}
	ecs.Positions[tank] = &component.Position{Vec2: geom.Vec2{X: 5, Y: 5}}
	ecs.Colliders[tank] = &component.Collider{HalfExtent: geom.Vec2{X: 0.5, Y: 0.5}}
	ecs.Turrets[gun] = component.NewTurret(tank, 2)
	return ecs, tank, gun
}

func TestWeaponSystem_FireUsesWorldPose(t *testing.T) {
	ecs, tank, gun := newArmedECS(t)
	logger, _ := test.NewNullLogger()
	turrets := NewTurretSystem(ecs)
	s := NewWeaponSystem(ecs, turrets, ecs, logger)

	req, ok := s.Fire(gun)
	require.True(t, ok)

	assert.Equal(t, tank, req.Owner)
	radius := 0.6 * math.Sqrt2
	assert.InDelta(t, 5.0, req.Position.X, 1e-9)
	assert.InDelta(t, 5+radius, req.Position.Y, 1e-9)
	assert.InDelta(t, config.BulletShootSpeed, req.Velocity.Y, 1e-9)
	assert.Equal(t, 1, ecs.Turrets[gun].Ammo)
}

func TestWeaponSystem_MissingColliderIsLogged(t *testing.T) {
	ecs, tank, gun := newArmedECS(t)
	delete(ecs.Colliders, tank)
	logger, hook := test.NewNullLogger()
	s := NewWeaponSystem(ecs, NewTurretSystem(ecs), ecs, logger)

	_, ok := s.Fire(gun)

	assert.False(t, ok)
	assert.Equal(t, 2, ecs.Turrets[gun].Ammo)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
}

func TestWeaponSystem_UpdateReloadsAll(t *testing.T) {
	ecs, _, gun := newArmedECS(t)
	other := ecs.NewEntity()
	ecs.Turrets[other] = &component.Turret{Ammo: 0, MaxAmmo: 3}
	ecs.Turrets[gun].Ammo = 0
	s := NewWeaponSystem(ecs, NewTurretSystem(ecs), ecs, nil)

	s.Update(0.5)
	s.Update(0.5)

	assert.Equal(t, 1, ecs.Turrets[gun].Ammo)
	assert.Equal(t, 1, ecs.Turrets[other].Ammo)

	_, ok := s.Fire(other)
	assert.False(t, ok, "orphan turret has no parent pose")
}
