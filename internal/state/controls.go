// internal/state/controls.go
package state

import (
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// playerControls turns the keyboard and mouse into tank intent. Poll is
// called once per frame before the world ticks; Control then replays it.
type playerControls struct {
	body     input.BodyInput
	cursor   geom.Vec2
	cursorOK bool
	shoot    bool
}

var _ input.Controller = (*playerControls)(nil)

func (c *playerControls) Poll(cam *utils.Camera) {
	var forward, backward, rotate float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		forward = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		backward = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		rotate += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		rotate -= 1
	}
	c.body = input.NewBodyInput(forward, backward, rotate)

	x, y := ebiten.CursorPosition()
	c.cursorOK = x >= 0 && y >= 0 && x < cam.ScreenWidth && y < cam.ScreenHeight
	if c.cursorOK {
		c.cursor = cam.ScreenToWorld(float64(x), float64(y))
	}
	c.shoot = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (c *playerControls) Control(pose input.Pose) (input.BodyInput, input.GunInput) {
	angle := pose.GunAngle
	if c.cursorOK {
		angle = input.AimAt(pose.Position, c.cursor)
	}
	gun := input.NewGunInput(angle, c.shoot)
	c.shoot = false
	return c.body, gun
}
