// internal/ui/label.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label draws outlined text, horizontally centred on X.
type Label struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewLabel(x, y, fontSize float32, clr rl.Color) *Label {
	return &Label{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            clr,
		OutlineColor:     rl.Black,
		OutlineThickness: 1,
	}
}

func (l *Label) Draw(text string, font rl.Font) {
	if text == "" {
		return
	}
	size := rl.MeasureTextEx(font, text, l.FontSize, 1)
	x := l.X - size.X/2
	y := l.Y

	for dy := -l.OutlineThickness; dy <= l.OutlineThickness; dy++ {
		for dx := -l.OutlineThickness; dx <= l.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(x+float32(dx), y+float32(dy)), l.FontSize, 1, l.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(x, y), l.FontSize, 1, l.Color)
}
