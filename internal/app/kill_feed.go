// internal/app/kill_feed.go
package app

import (
	"fmt"

	"go-tank-arena/internal/event"
)

// KillFeed keeps the last few kill messages for the HUD.
type KillFeed struct {
	limit int
	lines []string
}

func NewKillFeed(limit int) *KillFeed {
	if limit < 1 {
		limit = 1
	}
	return &KillFeed{limit: limit}
}

// OnEvent records TankKilled events; everything else is ignored.
func (f *KillFeed) OnEvent(e event.Event) {
	kill, ok := e.Data.(event.KillInfo)
	if e.Type != event.TankKilled || !ok {
		return
	}
	f.lines = append(f.lines, fmt.Sprintf("%s killed %s", kill.ShooterName, kill.VictimName))
	if len(f.lines) > f.limit {
		f.lines = f.lines[len(f.lines)-f.limit:]
	}
}

// Lines returns the messages oldest first.
func (f *KillFeed) Lines() []string {
	return append([]string(nil), f.lines...)
}
