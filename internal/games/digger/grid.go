// Package digger implements a tile-grid digging arcade game: a player tunnels
// through earth collecting emeralds while bags fall under gravity and
// creatures hunt the player along the tunnels.
//
// The World type is the simulation core. It is pure computation: one Update
// call per fixed tick, input as Intents, output as a list of Events and a
// read-only Snapshot. Game adapts the World to the registry.Game interface.
package digger

import "fmt"

// Cell is the state of one grid tile.
type Cell uint8

const (
	Earth Cell = iota
	Tunnel
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	if c == Tunnel {
		return "tunnel"
	}
	return "earth"
}

// Coord is an integer tile address. X grows right, Y grows down.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbor one tile away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Below returns the tile directly underneath.
func (c Coord) Below() Coord {
	return Coord{X: c.X, Y: c.Y + 1}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Direction is one of the four movement directions, or DirNone.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// neighborOrder is the fixed exploration order used by every grid search.
var neighborOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction is left or right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Opposite returns the reverse direction. DirNone stays DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Grid is the two-state tile map. Cells are stored row-major: index = y*W + x.
// Dimensions never change after construction and cells only go Earth -> Tunnel.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid creates a grid of the given size filled with earth.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("digger: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("digger: tile %v outside %dx%d grid", c, g.W, g.H))
	}
	return c.Y*g.W + c.X
}

// At returns the cell at c. Callers must check InBounds first.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.index(c)]
}

// IsTunnel reports whether c is dug. Tiles outside the grid read as tunnel;
// walkability checks pair this with InBounds.
func (g *Grid) IsTunnel(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[g.index(c)] == Tunnel
}

// IsEarth reports whether c is an undug tile inside the grid.
func (g *Grid) IsEarth(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Earth
}

// Dig turns the tile at c into tunnel. It returns true only when the tile
// actually changed. Callers must check InBounds first.
func (g *Grid) Dig(c Coord) bool {
	i := g.index(c)
	if g.cells[i] == Tunnel {
		return false
	}
	g.cells[i] = Tunnel
	return true
}

// TunnelCount returns the number of dug tiles.
func (g *Grid) TunnelCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell == Tunnel {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cell array in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
