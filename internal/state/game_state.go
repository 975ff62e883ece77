// internal/state/game_state.go
package state

import (
	"errors"

	"go-tank-arena/internal/app"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/interfaces"
	"go-tank-arena/internal/system"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"
	"go-tank-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// kinematics stands in for the physics collaborator of the arena.
type kinematics struct {
	movement    *system.MovementSystem
	projectiles *system.ProjectileSystem
}

func newKinematics(arena interfaces.Arena) *kinematics {
	return &kinematics{
		movement:    system.NewMovementSystem(arena.Entities(), arena.Map()),
		projectiles: system.NewProjectileSystem(arena.Entities(), arena.Map(), arena),
	}
}

func (k *kinematics) Update(deltaTime float64) {
	k.movement.Update(deltaTime)
	k.projectiles.Update(deltaTime)
}

// GameState plays one round in a World.
type GameState struct {
	sm       *StateMachine
	world    *app.World
	player   types.EntityID
	controls *playerControls
	camera   *utils.Camera
	renderer *render.ArenaRenderer
	physics  *kinematics
	face     font.Face
	path     []gridmap.Cell
	logger   log.FieldLogger
}

func NewGameState(sm *StateMachine, world *app.World, player types.EntityID, face font.Face, logger log.FieldLogger) *GameState {
	if logger == nil {
		logger = log.StandardLogger()
	}
	camera := utils.NewCamera(config.CameraHeight, config.ScreenWidth, config.ScreenHeight)
	colors := render.ArenaColors{
		Background: config.BackgroundColor,
		Air:        config.AirColor,
		Wall:       config.WallColor,
		Path:       config.PathColor,
		Text:       config.TextLightColor,
	}

	gs := &GameState{
		sm:       sm,
		world:    world,
		player:   player,
		controls: &playerControls{},
		camera:   camera,
		renderer: render.NewArenaRenderer(world.Grid, camera, colors, face),
		physics:  newKinematics(world),
		face:     face,
		logger:   logger,
	}
	world.SetController(player, gs.controls)
	gs.follow()
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}

	g.follow()
	g.controls.Poll(g.camera)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.planPath(g.camera.ScreenToWorld(float64(x), float64(y)))
	}

	g.world.Update(deltaTime)
	g.physics.Update(deltaTime)
}

// follow centres the camera on the player, or on the arena once it is dead.
func (g *GameState) follow() {
	if pos, ok := g.world.ECS.Positions[g.player]; ok {
		g.camera.Center = pos.Vec2
		return
	}
	g.camera.Center = geom.Vec2{X: float64(g.world.Grid.Width()) / 2, Y: float64(g.world.Grid.Height()) / 2}
}

func (g *GameState) planPath(target geom.Vec2) {
	pos, ok := g.world.ECS.Positions[g.player]
	if !ok {
		g.path = nil
		return
	}
	res, err := g.world.FindPathBetween(pos.Vec2, target)
	if errors.Is(err, gridmap.ErrNotFound) {
		g.logger.WithField("target", gridmap.CellAt(target)).Info("No path to target")
		g.path = nil
		return
	}
	g.path = res.Cells
	g.logger.WithFields(log.Fields{"cost": res.Cost, "cells": len(res.Cells)}).Debug("Path planned")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	hud := render.HUD{Kills: g.world.Kills.Lines(), Path: g.path}
	if gun, ok := g.world.GunOf(g.player); ok {
		if turret, ok := g.world.ECS.Turrets[gun]; ok {
			hud.PlayerAlive = true
			hud.Ammo = turret.Ammo
			hud.MaxAmmo = turret.MaxAmmo
		}
	}
	g.renderer.Draw(screen, g.camera, g.world.ECS, hud)
}

func (g *GameState) Exit() {}
