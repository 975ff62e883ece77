// cmd/map_viewer_raylib/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/ui"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/gridmap"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	statusHeight = 40
)

type viewer struct {
	arena  config.Arena
	grid   *gridmap.Grid
	stats  gridmap.GenerationStats
	cellPx int32

	start, goal       gridmap.Cell
	hasStart, hasGoal bool
	path              []gridmap.Cell
	status            string

	startMarker *ui.Marker
	goalMarker  *ui.Marker
	label       *ui.Label
}

func main() {
	fs := pflag.NewFlagSet("map_viewer", pflag.ExitOnError)
	fs.String("config", ".", "directory containing "+config.ConfigFileName)
	fs.Int("width", 32, "arena width in cells")
	fs.Int("height", 20, "arena height in cells")
	fs.Float64("fullness", 0.3, "target wall fraction")
	fs.Uint64("seed", 1, "generator seed")
	_ = fs.Parse(os.Args[1:])

	configDir, _ := fs.GetString("config")
	if err := config.Load(configDir); err != nil {
		log.WithError(err).Warn("Using default settings")
	}
	for key, flag := range map[string]string{
		"arena.width":    "width",
		"arena.height":   "height",
		"arena.fullness": "fullness",
		"arena.seed":     "seed",
	} {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			log.WithError(err).WithField("flag", flag).Fatal("Could not bind flag")
		}
	}
	if level, err := log.ParseLevel(config.LogLevel()); err == nil {
		log.SetLevel(level)
	}

	arena := config.ArenaSettings()
	if err := arena.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid arena")
	}

	rl.InitWindow(screenWidth, screenHeight, "Arena Viewer | LMB - start, RMB - goal, R - next seed")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v := &viewer{
		arena:       arena,
		startMarker: ui.NewMarker(6, ui.ColorToRL(config.PlayerColor)),
		goalMarker:  ui.NewMarker(6, ui.ColorToRL(config.EnemyColor)),
		label:       ui.NewLabel(screenWidth/2, screenHeight-statusHeight+10, 20, rl.RayWhite),
	}
	v.regenerate()

	font := rl.GetFontDefault()
	for !rl.WindowShouldClose() {
		v.update()

		rl.BeginDrawing()
		rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))
		v.draw()
		v.label.Draw(v.status, font)
		rl.EndDrawing()
	}
}

func (v *viewer) regenerate() {
	rng := utils.NewPRNGService(v.arena.Seed)
	v.grid, v.stats = gridmap.NewGenerator(rng, log.StandardLogger()).Generate(v.arena.Width, v.arena.Height, v.arena.Fullness)

	v.cellPx = int32(min(screenWidth/v.grid.Width(), (screenHeight-statusHeight)/v.grid.Height()))
	if v.cellPx < 1 {
		v.cellPx = 1
	}
	v.hasStart, v.hasGoal = false, false
	v.path = nil
	v.startMarker.Hide()
	v.goalMarker.Hide()
	v.status = fmt.Sprintf("seed %d: %d/%d walls", v.arena.Seed, v.stats.Placed, v.stats.Requested)

	log.WithFields(log.Fields{"seed": v.arena.Seed, "walls": v.stats.Placed}).Info("Arena generated")
	log.Debug("\n" + v.grid.String())
}

func (v *viewer) update() {
	if rl.IsKeyPressed(rl.KeyR) {
		v.arena.Seed++
		v.regenerate()
		return
	}

	mouse := rl.GetMousePosition()
	cell, ok := v.cellAt(mouse)
	if !ok {
		return
	}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		v.start, v.hasStart = cell, true
		v.startMarker.MoveTo(v.cellCenter(cell))
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		v.goal, v.hasGoal = cell, true
		v.goalMarker.MoveTo(v.cellCenter(cell))
	default:
		return
	}
	v.search()
}

func (v *viewer) search() {
	if !v.hasStart || !v.hasGoal {
		return
	}
	res, err := gridmap.AStar(v.grid, v.start, v.goal)
	if errors.Is(err, gridmap.ErrNotFound) {
		v.path = nil
		v.status = fmt.Sprintf("no path from %v to %v", v.start, v.goal)
		return
	}
	v.path = res.Cells
	v.status = fmt.Sprintf("path %v -> %v: cost %d", v.start, v.goal, res.Cost)
}

// cellAt maps a pixel to a grid cell; row 0 is drawn at the bottom.
func (v *viewer) cellAt(p rl.Vector2) (gridmap.Cell, bool) {
	if p.X < 0 || p.Y < 0 {
		return gridmap.Cell{}, false
	}
	x := int(p.X) / int(v.cellPx)
	row := int(p.Y) / int(v.cellPx)
	c := gridmap.Cell{X: x, Y: v.grid.Height() - 1 - row}
	return c, v.grid.InBounds(c)
}

func (v *viewer) cellOrigin(c gridmap.Cell) (int32, int32) {
	return int32(c.X) * v.cellPx, int32(v.grid.Height()-1-c.Y) * v.cellPx
}

func (v *viewer) cellCenter(c gridmap.Cell) (float32, float32) {
	x, y := v.cellOrigin(c)
	half := float32(v.cellPx) / 2
	return float32(x) + half, float32(y) + half
}

func (v *viewer) draw() {
	air := ui.ColorToRL(config.AirColor)
	wall := ui.ColorToRL(config.WallColor)
	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			c := gridmap.Cell{X: x, Y: y}
			px, py := v.cellOrigin(c)
			clr := air
			if v.grid.At(c) == gridmap.Wall {
				clr = wall
			}
			rl.DrawRectangle(px, py, v.cellPx, v.cellPx, clr)
			rl.DrawRectangleLines(px, py, v.cellPx, v.cellPx, rl.Fade(rl.Black, 0.3))
		}
	}

	pathColor := ui.ColorToRL(config.PathColor)
	for i := 1; i < len(v.path); i++ {
		x0, y0 := v.cellCenter(v.path[i-1])
		x1, y1 := v.cellCenter(v.path[i])
		rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), 3, pathColor)
	}

	v.startMarker.Draw()
	v.goalMarker.Draw()
}
