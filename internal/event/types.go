// internal/event/types.go
package event

import "go-tank-arena/internal/types"

const (
	MapGenerated        EventType = "MapGenerated"
	GenerationShortfall EventType = "GenerationShortfall"
	TankSpawned         EventType = "TankSpawned"
	BulletFired         EventType = "BulletFired"
	TankKilled          EventType = "TankKilled"
)

// MapInfo is the payload of MapGenerated and GenerationShortfall.
type MapInfo struct {
	Width, Height int
	Seed          uint64
	Requested     int
	Placed        int
}

// ShotInfo is the payload of BulletFired.
type ShotInfo struct {
	Bullet  types.EntityID
	Shooter types.EntityID
}

// KillInfo is the payload of TankKilled.
type KillInfo struct {
	Shooter     types.EntityID
	Victim      types.EntityID
	ShooterName string
	VictimName  string
}
