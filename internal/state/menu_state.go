// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the title screen. Space starts a round built by start.
type MenuState struct {
	sm    *StateMachine
	start func() (State, error)
	face  font.Face
	err   error
}

func NewMenuState(sm *StateMachine, start func() (State, error), face font.Face) *MenuState {
	return &MenuState{sm: sm, start: start, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	next, err := m.start()
	if err != nil {
		m.err = err
		return
	}
	m.sm.SetState(next)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.face == nil {
		return
	}
	lines := []string{
		"TANKS",
		"",
		"Arrows / WASD: drive    Mouse: aim    Click / Space: fire",
		"Right click: path to cursor    P / F9: pause",
		"",
		"Press SPACE to start",
	}
	if m.err != nil {
		lines = append(lines, "", fmt.Sprintf("Could not start: %v", m.err))
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		width := text.BoundString(m.face, line).Dx()
		text.Draw(screen, line, m.face, (config.ScreenWidth-width)/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
