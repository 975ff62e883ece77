// internal/app/tanks.go
package app

import (
	"errors"
	"fmt"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/system"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"

	log "github.com/sirupsen/logrus"
)

// ErrNoSpawnPoint is returned when the arena has no free Air cell left.
var ErrNoSpawnPoint = errors.New("no free spawn point")

// SpawnTank creates a tank at the given world position together with its
// turret, which starts with a full magazine.
func (w *World) SpawnTank(name string, playerControlled bool, at geom.Vec2) (tank, gun types.EntityID) {
	tank = w.ECS.NewEntity()
	w.ECS.Positions[tank] = &component.Position{Vec2: at}
	w.ECS.Velocities[tank] = &component.Velocity{}
	w.ECS.Colliders[tank] = &component.Collider{HalfExtent: geom.Vec2{X: config.TankHalfExtent, Y: config.TankHalfExtent}}
	w.ECS.TankBodies[tank] = &component.TankBody{Name: name, PlayerControlled: playerControlled}
	clr := config.EnemyColor
	if playerControlled {
		clr = config.PlayerColor
	}
	w.ECS.Renderables[tank] = &component.Renderable{Color: clr}

	gun = w.ECS.NewEntity()
	w.ECS.Turrets[gun] = component.NewTurret(tank, w.maxAmmo)
	w.ECS.Renderables[gun] = &component.Renderable{Color: config.GunColor}

	w.tanks = append(w.tanks, tank)
	w.guns[tank] = gun

	w.logger.WithFields(log.Fields{"tank": tank, "name": name, "x": at.X, "y": at.Y}).Debug("Tank spawned")
	w.Events.Dispatch(event.Event{Type: event.TankSpawned, Data: tank})
	return tank, gun
}

// RandomSpawnPoint picks the centre of a random Air cell that no living tank
// occupies. It gives up after config.SpawnTries draws.
func (w *World) RandomSpawnPoint() (geom.Vec2, error) {
	air := w.Grid.AirCells()
	if len(air) == 0 {
		return geom.Vec2{}, ErrNoSpawnPoint
	}
	taken := make(map[gridmap.Cell]bool, len(w.tanks))
	for _, id := range w.Tanks() {
		if p, ok := w.ECS.Positions[id]; ok {
			taken[gridmap.CellAt(p.Vec2)] = true
		}
	}
	for i := 0; i < config.SpawnTries; i++ {
		c := air[w.Rng.Intn(len(air))]
		if !taken[c] {
			return gridmap.CellCenter(c), nil
		}
	}
	return geom.Vec2{}, ErrNoSpawnPoint
}

// SpawnArmy places the player tank and aiCount enemies on random free cells.
// Enemies are named "A.I", "A.I2", "A.I3" and so on.
func (w *World) SpawnArmy(playerName string, aiCount int) (player types.EntityID, err error) {
	at, err := w.RandomSpawnPoint()
	if err != nil {
		return 0, fmt.Errorf("spawning %s: %w", playerName, err)
	}
	player, _ = w.SpawnTank(playerName, true, at)

	for i := 1; i <= aiCount; i++ {
		name := "A.I"
		if i > 1 {
			name = fmt.Sprintf("A.I%d", i)
		}
		at, err := w.RandomSpawnPoint()
		if err != nil {
			return player, fmt.Errorf("spawning %s: %w", name, err)
		}
		w.SpawnTank(name, false, at)
	}
	return player, nil
}

// SpawnBullet creates the bullet described by req.
func (w *World) SpawnBullet(req system.BulletSpawnRequest) types.EntityID {
	id := w.ECS.NewEntity()
	w.ECS.Positions[id] = &component.Position{Vec2: req.Position}
	w.ECS.Velocities[id] = &component.Velocity{Linear: req.Velocity}
	w.ECS.Colliders[id] = &component.Collider{HalfExtent: req.HalfExtent}
	w.ECS.Bullets[id] = &component.Bullet{Shooter: req.Owner}
	w.ECS.Renderables[id] = &component.Renderable{Color: config.BulletColor}

	w.Events.Dispatch(event.Event{Type: event.BulletFired, Data: event.ShotInfo{Bullet: id, Shooter: req.Owner}})
	return id
}

// RemoveBullet deletes a bullet, e.g. after it hit a wall.
func (w *World) RemoveBullet(id types.EntityID) {
	if _, ok := w.ECS.Bullets[id]; ok {
		w.ECS.RemoveEntity(id)
	}
}

// ResolveHit applies a bullet/tank contact. A tank is immune to its own
// bullets; any other hit destroys the tank, its turret and the bullet.
// It reports whether the tank was killed.
func (w *World) ResolveHit(bullet, tank types.EntityID) bool {
	b, ok := w.ECS.Bullets[bullet]
	if !ok {
		return false
	}
	victim, ok := w.ECS.TankBodies[tank]
	if !ok || b.Shooter == tank {
		return false
	}

	kill := event.KillInfo{Shooter: b.Shooter, Victim: tank, VictimName: victim.Name}
	if shooter, ok := w.ECS.TankBodies[b.Shooter]; ok {
		kill.ShooterName = shooter.Name
	}
	w.logger.WithFields(log.Fields{"shooter": kill.Shooter, "victim": kill.Victim}).
		Infof("%s killed %s", kill.ShooterName, kill.VictimName)

	w.RemoveBullet(bullet)
	w.DespawnTank(tank)
	w.Events.Dispatch(event.Event{Type: event.TankKilled, Data: kill})
	return true
}

// DespawnTank removes a tank and the turret mounted on it.
func (w *World) DespawnTank(tank types.EntityID) {
	if gun, ok := w.guns[tank]; ok {
		w.ECS.RemoveEntity(gun)
		delete(w.guns, tank)
	}
	w.ECS.RemoveEntity(tank)
	delete(w.controllers, tank)
	delete(w.idleWarned, tank)
	for i, id := range w.tanks {
		if id == tank {
			w.tanks = append(w.tanks[:i], w.tanks[i+1:]...)
			break
		}
	}
}
