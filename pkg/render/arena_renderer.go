// pkg/render/arena_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
	"go-tank-arena/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	gunLength   = 0.9  // world units
	gunWidth    = 0.15 // world units
	hudMargin   = 10
	hudLineStep = 16
)

// HUD is the per-frame overlay data.
type HUD struct {
	PlayerAlive bool
	Ammo        int
	MaxAmmo     int
	Kills       []string
	Path        []gridmap.Cell
}

// ArenaRenderer draws the grid, tanks, guns, bullets and the HUD.
type ArenaRenderer struct {
	grid     *gridmap.Grid
	colors   ArenaColors
	face     font.Face
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image // pre-rendered grid
	mapScale float64
}

func NewArenaRenderer(grid *gridmap.Grid, cam *utils.Camera, colors ArenaColors, face font.Face) *ArenaRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &ArenaRenderer{
		grid:    grid,
		colors:  colors,
		face:    face,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 12),
	}
	r.RenderMapImage(cam.Scale())
	return r
}

// RenderMapImage draws every cell once at the given pixels per unit. The
// grid never changes, so this only reruns when the scale does.
func (r *ArenaRenderer) RenderMapImage(scale float64) {
	w := int(math.Ceil(float64(r.grid.Width()) * scale))
	h := int(math.Ceil(float64(r.grid.Height()) * scale))
	if w < 1 || h < 1 {
		return
	}
	r.mapImage = ebiten.NewImage(w, h)
	r.mapScale = scale

	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			c := gridmap.Cell{X: x, Y: y}
			px := float32(float64(x) * scale)
			py := float32(float64(r.grid.Height()-1-y) * scale)
			size := float32(scale)

			fill := r.colors.Air
			if r.grid.At(c) == gridmap.Wall {
				fill = r.colors.Wall
			}
			vector.DrawFilledRect(r.mapImage, px, py, size, size, fill, false)
			vector.StrokeRect(r.mapImage, px, py, size, size, 1, DarkenColor(fill), false)
		}
	}
}

// Draw renders one frame.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, cam *utils.Camera, ecs *entity.ECS, hud HUD) {
	screen.Fill(r.colors.Background)

	if cam.Scale() != r.mapScale {
		r.RenderMapImage(cam.Scale())
	}
	if r.mapImage != nil {
		// image row 0 is the top row of the grid
		ox, oy := cam.WorldToScreen(geom.Vec2{X: 0, Y: float64(r.grid.Height())})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox, oy)
		screen.DrawImage(r.mapImage, op)
	}

	r.drawPath(screen, cam, hud.Path)

	for id, body := range ecs.TankBodies {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		half := geom.Vec2{X: config.TankHalfExtent, Y: config.TankHalfExtent}
		if col, ok := ecs.Colliders[id]; ok {
			half = col.HalfExtent
		}
		clr := config.EnemyColor
		if rend, ok := ecs.Renderables[id]; ok {
			clr = rend.Color
		}
		r.drawBox(screen, cam, pos.Vec2, half, body.Orientation, clr)
	}

	for id, turret := range ecs.Turrets {
		r.drawGun(screen, cam, ecs, id, turret)
	}

	for id := range ecs.Bullets {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		half := geom.Vec2{X: config.BulletHalfExtent, Y: config.BulletHalfExtent}
		if col, ok := ecs.Colliders[id]; ok {
			half = col.HalfExtent
		}
		clr := config.BulletColor
		if rend, ok := ecs.Renderables[id]; ok {
			clr = rend.Color
		}
		r.drawBox(screen, cam, pos.Vec2, half, 0, clr)
	}

	r.drawHUD(screen, hud)
}

func (r *ArenaRenderer) drawGun(screen *ebiten.Image, cam *utils.Camera, ecs *entity.ECS, id types.EntityID, turret *component.Turret) {
	body, ok := ecs.TankBodies[turret.Parent]
	if !ok {
		return
	}
	pos, ok := ecs.Positions[turret.Parent]
	if !ok {
		return
	}
	clr := config.GunColor
	if rend, ok := ecs.Renderables[id]; ok {
		clr = rend.Color
	}
	angle := component.WorldAngle(body.Orientation, turret.LocalAngle)
	tip := pos.Vec2.Add(geom.FromAngle(angle).Scale(gunLength))

	x0, y0 := cam.WorldToScreen(pos.Vec2)
	x1, y1 := cam.WorldToScreen(tip)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(gunWidth*cam.Scale()), clr, true)
}

// drawBox fills a box of half extent half rotated by angle around center.
func (r *ArenaRenderer) drawBox(screen *ebiten.Image, cam *utils.Camera, center, half geom.Vec2, angle float64, clr color.RGBA) {
	sin, cos := math.Sincos(angle)
	corners := [4]geom.Vec2{
		{X: -half.X, Y: -half.Y},
		{X: half.X, Y: -half.Y},
		{X: half.X, Y: half.Y},
		{X: -half.X, Y: half.Y},
	}

	path := vector.Path{}
	for i, c := range corners {
		world := geom.Vec2{
			X: center.X + c.X*cos - c.Y*sin,
			Y: center.Y + c.X*sin + c.Y*cos,
		}
		x, y := cam.WorldToScreen(world)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *ArenaRenderer) drawPath(screen *ebiten.Image, cam *utils.Camera, path []gridmap.Cell) {
	size := float32(cam.Scale() * 0.3)
	for _, c := range path {
		x, y := cam.WorldToScreen(gridmap.CellCenter(c))
		vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, r.colors.Path, false)
	}
}

func (r *ArenaRenderer) drawHUD(screen *ebiten.Image, hud HUD) {
	if r.face == nil {
		return
	}
	status := fmt.Sprintf("Ammo: %d/%d", hud.Ammo, hud.MaxAmmo)
	if !hud.PlayerAlive {
		status = "Destroyed"
	}
	text.Draw(screen, status, r.face, hudMargin, hudMargin+hudLineStep, r.colors.Text)

	for i, line := range hud.Kills {
		text.Draw(screen, line, r.face, hudMargin, hudMargin+hudLineStep*(i+3), r.colors.Text)
	}
}
