// internal/system/weapon.go
package system

import (
	"math"
	"time"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"

	log "github.com/sirupsen/logrus"
)

// BulletSpawnRequest asks the spawn collaborator to create one bullet. It is
// consumed immediately and never stored.
type BulletSpawnRequest struct {
	Owner      types.EntityID
	Position   geom.Vec2
	Velocity   geom.Vec2
	HalfExtent geom.Vec2
}

// Reload accumulates dt into the turret's repeating reload timer and adds one
// round per completed config.ReloadInterval, never beyond MaxAmmo.
func Reload(dt float64, turret *component.Turret) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	turret.ReloadElapsed += time.Duration(math.Round(dt * float64(time.Second)))
	for turret.ReloadElapsed >= config.ReloadInterval {
		turret.ReloadElapsed -= config.ReloadInterval
		turret.Ammo = min(turret.Ammo+1, turret.MaxAmmo)
	}
}

// Fire spends one round and returns the bullet to spawn. With no ammo it
// returns false and leaves the turret untouched.
//
// The bullet starts on the circle circumscribing the owner's box, pushed out
// by its own half extent, so it never overlaps the tank that fired it.
func Fire(owner types.EntityID, turret *component.Turret, worldAngle float64, worldPos, ownerHalfExtent geom.Vec2) (BulletSpawnRequest, bool) {
	if turret.Ammo <= 0 {
		return BulletSpawnRequest{}, false
	}
	turret.Ammo--

	radius := (ownerHalfExtent.MaxComponent() + config.BulletHalfExtent) * math.Sqrt2
	dir := geom.FromAngle(worldAngle)

	return BulletSpawnRequest{
		Owner:      owner,
		Position:   worldPos.Add(dir.Scale(radius)),
		Velocity:   dir.Scale(config.BulletShootSpeed),
		HalfExtent: geom.Vec2{X: config.BulletHalfExtent, Y: config.BulletHalfExtent},
	}, true
}

// ColliderLookup answers the collider half extent of an entity.
type ColliderLookup interface {
	HalfExtent(id types.EntityID) (geom.Vec2, bool)
}

// WeaponSystem reloads every turret and turns fire intent into spawn requests.
type WeaponSystem struct {
	ecs       *entity.ECS
	turrets   *TurretSystem
	colliders ColliderLookup
	logger    log.FieldLogger
}

func NewWeaponSystem(ecs *entity.ECS, turrets *TurretSystem, colliders ColliderLookup, logger log.FieldLogger) *WeaponSystem {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &WeaponSystem{
		ecs:       ecs,
		turrets:   turrets,
		colliders: colliders,
		logger:    logger,
	}
}

// Update runs the reload timer of every turret.
func (s *WeaponSystem) Update(deltaTime float64) {
	for _, turret := range s.ecs.Turrets {
		Reload(deltaTime, turret)
	}
}

// Fire shoots turret id from its current world pose. Nothing is spent when
// the turret is empty, or when the owning tank has no collider, which is a
// broken integration and gets logged.
func (s *WeaponSystem) Fire(id types.EntityID) (BulletSpawnRequest, bool) {
	turret, ok := s.ecs.Turrets[id]
	if !ok || turret.Ammo <= 0 {
		return BulletSpawnRequest{}, false
	}
	pos, angle, ok := s.turrets.WorldPose(id)
	if !ok {
		return BulletSpawnRequest{}, false
	}
	halfExtent, ok := s.colliders.HalfExtent(turret.Parent)
	if !ok {
		s.logger.WithField("tank", turret.Parent).Error("WeaponSystem: owner of turret has no collider, shot dropped")
		return BulletSpawnRequest{}, false
	}
	return Fire(turret.Parent, turret, angle, pos, halfExtent)
}
