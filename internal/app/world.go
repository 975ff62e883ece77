// internal/app/world.go
package app

import (
	"fmt"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/interfaces"
	"go-tank-arena/internal/system"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"

	log "github.com/sirupsen/logrus"
)

var _ interfaces.Arena = (*World)(nil)

// Options configures a World.
type Options struct {
	Arena   config.Arena
	MaxAmmo int
	// Events receives world events; subscribe before NewWorld to see MapGenerated.
	Events *event.Dispatcher
	Logger log.FieldLogger
}

// World is the arena context: it owns the grid and every entity, and runs
// the per-tick control models in a fixed order.
type World struct {
	ECS    *entity.ECS
	Grid   *gridmap.Grid
	Events *event.Dispatcher
	Rng    *utils.PRNGService
	Stats  gridmap.GenerationStats
	Kills  *KillFeed

	TankBodySystem *system.TankBodySystem
	TurretSystem   *system.TurretSystem
	WeaponSystem   *system.WeaponSystem

	logger      log.FieldLogger
	maxAmmo     int
	tanks       []types.EntityID // spawn order, also the tick order
	guns        map[types.EntityID]types.EntityID
	controllers map[types.EntityID]input.Controller
	idleWarned  map[types.EntityID]bool
}

// NewWorld generates the arena and returns an empty world around it. The
// grid is never modified afterwards.
func NewWorld(opts Options) (*World, error) {
	if err := opts.Arena.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena settings: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	events := opts.Events
	if events == nil {
		events = event.NewDispatcher()
	}
	maxAmmo := opts.MaxAmmo
	if maxAmmo <= 0 {
		maxAmmo = config.DefaultMaxAmmo
	}

	rng := utils.NewPRNGService(opts.Arena.Seed)
	grid, stats := gridmap.NewGenerator(rng, logger).Generate(opts.Arena.Width, opts.Arena.Height, opts.Arena.Fullness)

	ecs := entity.NewECS()
	turrets := system.NewTurretSystem(ecs)
	w := &World{
		ECS:            ecs,
		Grid:           grid,
		Events:         events,
		Rng:            rng,
		Stats:          stats,
		Kills:          NewKillFeed(config.KillFeedLength),
		TankBodySystem: system.NewTankBodySystem(ecs),
		TurretSystem:   turrets,
		WeaponSystem:   system.NewWeaponSystem(ecs, turrets, ecs, logger),
		logger:         logger,
		maxAmmo:        maxAmmo,
		guns:           make(map[types.EntityID]types.EntityID),
		controllers:    make(map[types.EntityID]input.Controller),
		idleWarned:     make(map[types.EntityID]bool),
	}

	events.Subscribe(event.TankKilled, w.Kills)

	info := event.MapInfo{
		Width:     grid.Width(),
		Height:    grid.Height(),
		Seed:      rng.Seed(),
		Requested: stats.Requested,
		Placed:    stats.Placed,
	}
	logger.WithFields(log.Fields{
		"width":  info.Width,
		"height": info.Height,
		"seed":   info.Seed,
		"walls":  stats.Placed,
	}).Info("Arena generated")
	if stats.Shortfall() > 0 {
		events.Dispatch(event.Event{Type: event.GenerationShortfall, Data: info})
	}
	events.Dispatch(event.Event{Type: event.MapGenerated, Data: info})

	return w, nil
}

// SetController assigns the intent source of a tank. A nil controller
// leaves the tank idle and stops it where it stands.
func (w *World) SetController(tank types.EntityID, c input.Controller) {
	if c == nil {
		delete(w.controllers, tank)
		w.halt(tank)
		return
	}
	w.controllers[tank] = c
	delete(w.idleWarned, tank)
}

// Tanks returns the living tanks in spawn order.
func (w *World) Tanks() []types.EntityID {
	out := make([]types.EntityID, 0, len(w.tanks))
	for _, id := range w.tanks {
		if _, alive := w.ECS.TankBodies[id]; alive {
			out = append(out, id)
		}
	}
	return out
}

// GunOf returns the turret entity mounted on tank.
func (w *World) GunOf(tank types.EntityID) (types.EntityID, bool) {
	gun, ok := w.guns[tank]
	return gun, ok
}

// Pose returns what a controller may observe about tank.
func (w *World) Pose(tank types.EntityID) (input.Pose, bool) {
	body, ok := w.ECS.TankBodies[tank]
	if !ok {
		return input.Pose{}, false
	}
	pose := input.Pose{Orientation: body.Orientation, GunAngle: body.Orientation}
	if p, ok := w.ECS.Positions[tank]; ok {
		pose.Position = p.Vec2
	}
	if gun, ok := w.guns[tank]; ok {
		if _, angle, ok := w.TurretSystem.WorldPose(gun); ok {
			pose.GunAngle = angle
		}
	}
	return pose, true
}

// Update runs one tick. For every tank in spawn order: controller, body,
// turret aim, then fire using the freshly aimed turret. Reload timers run
// last for every turret.
func (w *World) Update(deltaTime float64) {
	w.ECS.GameTime += deltaTime

	for _, tank := range w.Tanks() {
		ctrl, ok := w.controllers[tank]
		if !ok {
			w.warnIdle(tank)
			w.halt(tank)
			continue
		}
		pose, _ := w.Pose(tank)
		bodyIn, gunIn := ctrl.Control(pose)

		w.TankBodySystem.Drive(tank, bodyIn, deltaTime)

		gun, hasGun := w.guns[tank]
		if !hasGun {
			continue
		}
		w.TurretSystem.Aim(gun, gunIn.Angle, deltaTime)
		if gunIn.Shoot {
			if req, fired := w.WeaponSystem.Fire(gun); fired {
				w.SpawnBullet(req)
			}
		}
	}

	w.WeaponSystem.Update(deltaTime)
}

// halt zeroes the chassis speed and the velocity handed to physics.
func (w *World) halt(tank types.EntityID) {
	if body, ok := w.ECS.TankBodies[tank]; ok {
		body.Speed = 0
	}
	if v, ok := w.ECS.Velocities[tank]; ok {
		v.Linear = geom.Vec2{}
	}
}

// warnIdle reports, once per tank, that nothing drives it. Non-player tanks
// have no decision logic of their own.
func (w *World) warnIdle(tank types.EntityID) {
	if w.idleWarned[tank] {
		return
	}
	w.idleWarned[tank] = true
	name := ""
	if body, ok := w.ECS.TankBodies[tank]; ok {
		name = body.Name
	}
	w.logger.WithFields(log.Fields{"tank": tank, "name": name}).Warn("Tank has no controller and stays idle")
}

// FindPath searches the arena grid between two cells.
func (w *World) FindPath(start, goal gridmap.Cell) (gridmap.PathResult, error) {
	return gridmap.AStar(w.Grid, start, goal)
}

// FindPathBetween searches between the cells containing two world positions.
func (w *World) FindPathBetween(from, to geom.Vec2) (gridmap.PathResult, error) {
	return w.FindPath(gridmap.CellAt(from), gridmap.CellAt(to))
}

// Entities exposes the component store to the host.
func (w *World) Entities() *entity.ECS { return w.ECS }

// Map exposes the arena grid to the host.
func (w *World) Map() *gridmap.Grid { return w.Grid }
