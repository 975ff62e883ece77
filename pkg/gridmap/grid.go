// pkg/gridmap/grid.go
package gridmap

import (
	"math"
	"strings"

	"go-tank-arena/pkg/geom"
)

// Tile is the occupancy of one arena cell.
type Tile uint8

const (
	Air Tile = iota
	Wall
)

func (t Tile) String() string {
	switch t {
	case Air:
		return "Air"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Cell addresses a tile; X is the column, Y the row.
type Cell struct {
	X, Y int
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Directions are the four axis-aligned steps: +X, -X, +Y, -Y.
var Directions = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a fixed-size, row-major tile array. Every border cell is Wall for
// the lifetime of the grid; only the generator in this package writes tiles.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid returns a width x height grid of Air with a Wall border.
// Non-positive sizes produce an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for x := 0; x < width; x++ {
		g.set(Cell{x, 0}, Wall)
		g.set(Cell{x, height - 1}, Wall)
	}
	for y := 0; y < height; y++ {
		g.set(Cell{0, y}, Wall)
		g.set(Cell{width - 1, y}, Wall)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsBorder reports whether c is on the outer ring.
func (g *Grid) IsBorder(c Cell) bool {
	return g.InBounds(c) && (c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1)
}

// At returns the tile at c. Cells outside the grid read as Wall.
func (g *Grid) At(c Cell) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[c.Y*g.width+c.X]
}

// IsPassable reports whether c is inside the grid and Air.
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && g.tiles[c.Y*g.width+c.X] == Air
}

func (g *Grid) set(c Cell, t Tile) {
	if g.InBounds(c) {
		g.tiles[c.Y*g.width+c.X] = t
	}
}

// Neighbors returns the passable axis-aligned neighbours of c.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		n := c.Add(d)
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// AirCells lists every passable cell in row-major order.
func (g *Grid) AirCells() []Cell {
	var cells []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Air {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// CountWalls returns the number of Wall tiles, border included.
func (g *Grid) CountWalls() int {
	n := 0
	for _, t := range g.tiles {
		if t == Wall {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for Wall and '.' for Air, top row last
// so that +Y points up like the world.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellCenter returns the world position of the centre of c. Cell (x, y)
// covers [x, x+1) x [y, y+1) in world units.
func CellCenter(c Cell) geom.Vec2 {
	return geom.Vec2{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// CellAt returns the cell containing world position p.
func CellAt(p geom.Vec2) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
