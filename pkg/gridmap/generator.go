// pkg/gridmap/generator.go
package gridmap

import (
	"math"

	"go-tank-arena/internal/config"
	"go-tank-arena/internal/utils"

	log "github.com/sirupsen/logrus"
)

// Rand is the random stream the generator draws from.
type Rand interface {
	Intn(n int) int
	// IntRange returns an int in [lo, hi], both ends included.
	IntRange(lo, hi int) int
}

// GenerationStats reports how many wall segments were asked for and placed.
type GenerationStats struct {
	Requested int
	Placed    int
}

// Shortfall is the number of requested segments that could not be placed.
func (s GenerationStats) Shortfall() int {
	return s.Requested - s.Placed
}

// Generator builds arenas: a Wall border plus randomly placed straight wall
// segments. All randomness comes from the injected stream.
type Generator struct {
	rng    Rand
	logger log.FieldLogger
}

// NewGenerator returns a generator drawing from rng. A nil logger uses the
// standard logrus logger.
func NewGenerator(rng Rand, logger log.FieldLogger) *Generator {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Generator{rng: rng, logger: logger}
}

// Generate returns a seeded arena of the given size. Identical arguments
// always produce identical grids.
func Generate(width, height int, fullness float64, seed uint64) *Grid {
	grid, _ := NewGenerator(utils.NewPRNGService(seed), nil).Generate(width, height, fullness)
	return grid
}

// Generate builds a width x height grid whose wall density is bounded by
// fullness. Placement is best effort: when a segment cannot be placed within
// config.SpawnTries draws, generation stops and the grid built so far is
// returned along with the shortfall.
func (g *Generator) Generate(width, height int, fullness float64) (*Grid, GenerationStats) {
	grid := NewGrid(width, height)
	if grid.width == 0 || grid.height == 0 {
		return grid, GenerationStats{}
	}

	if !(fullness > 0) {
		fullness = 0
	} else if fullness > 1 {
		fullness = 1
	}

	wantedFilledTiles := float64(grid.width*grid.height) * fullness / 2.0
	stats := GenerationStats{
		Requested: int(math.Round(wantedFilledTiles / config.MaxWallLength)),
	}

	// interior air left; a segment may never take the last one
	air := len(grid.AirCells())

	for segment := 0; segment < stats.Requested; segment++ {
		placed := false
		for try := 0; try < config.SpawnTries; try++ {
			length := g.rng.IntRange(1, config.MaxWallLength)
			dir := Directions[g.rng.Intn(len(Directions))]
			start := Cell{X: g.rng.Intn(grid.width), Y: g.rng.Intn(grid.height)}

			if air-length < 1 || !grid.segmentFree(start, dir, length) {
				continue
			}
			grid.fillSegment(start, dir, length)
			air -= length
			placed = true
			break
		}
		if !placed {
			g.logger.WithFields(log.Fields{
				"requested": stats.Requested,
				"placed":    stats.Placed,
				"segment":   segment,
				"tries":     config.SpawnTries,
			}).Warn("Map generation ran out of tries, returning partial map")
			break
		}
		stats.Placed++
	}

	return grid, stats
}

// segmentFree reports whether length cells from start along dir are all in
// bounds and Air.
func (g *Grid) segmentFree(start, dir Cell, length int) bool {
	c := start
	for i := 0; i < length; i++ {
		if !g.IsPassable(c) {
			return false
		}
		c = c.Add(dir)
	}
	return true
}

func (g *Grid) fillSegment(start, dir Cell, length int) {
	c := start
	for i := 0; i < length; i++ {
		g.set(c, Wall)
		c = c.Add(dir)
	}
}
