// internal/interfaces/arena.go
package interfaces

import (
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/gridmap"
)

// Arena is what the host's physics step needs from the simulation core.
type Arena interface {
	Entities() *entity.ECS
	Map() *gridmap.Grid
	ResolveHit(bullet, tank types.EntityID) bool
	RemoveBullet(bullet types.EntityID)
}
