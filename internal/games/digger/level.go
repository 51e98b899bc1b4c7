package digger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-digger/internal/config"
)

// Level is a freshly populated playfield, before any play.
type Level struct {
	Grid     *Grid
	Emeralds map[Coord]bool
	Bags     []Coord
	Start    Coord // Player start tile
	Spawn    Coord // Creature spawn tile
	Bonus    Coord // Where the bonus item appears, the grid centre
}

// ParseLevel builds a level from rows of equal width. Legend:
//
//	#  earth
//	.  tunnel
//	E  emerald in earth
//	e  emerald in a tunnel
//	B  bag in earth
//	P  player start (tunnel)
//	S  creature spawn (tunnel)
//
// Start and spawn are required exactly once each. The bonus item tile is
// the grid centre.
func ParseLevel(rows []string) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("digger: empty level layout")
	}
	w, h := len(rows[0]), len(rows)
	l := &Level{Grid: NewGrid(w, h), Emeralds: make(map[Coord]bool), Bonus: C(w/2, h/2)}
	var haveStart, haveSpawn bool

	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("digger: row %d has width %d, expected %d", y, len(row), w)
		}
		for x, ch := range row {
			c := C(x, y)
			switch ch {
			case '#':
			case '.':
				l.Grid.Dig(c)
			case 'E':
				l.Emeralds[c] = true
			case 'e':
				l.Grid.Dig(c)
				l.Emeralds[c] = true
			case 'B':
				l.Bags = append(l.Bags, c)
			case 'P':
				if haveStart {
					return nil, fmt.Errorf("digger: second player start at %v", c)
				}
				l.Grid.Dig(c)
				l.Start, haveStart = c, true
			case 'S':
				if haveSpawn {
					return nil, fmt.Errorf("digger: second spawn at %v", c)
				}
				l.Grid.Dig(c)
				l.Spawn, haveSpawn = c, true
			default:
				return nil, fmt.Errorf("digger: unknown tile %q at %v", ch, c)
			}
		}
	}
	if !haveStart || !haveSpawn {
		return nil, fmt.Errorf("digger: layout needs one P and one S")
	}
	return l, nil
}

// MustParseLevel is ParseLevel for fixed layouts known to be valid.
func MustParseLevel(rows ...string) *Level {
	l, err := ParseLevel(rows)
	if err != nil {
		panic(err)
	}
	return l
}

// GenerateLevel populates a new random level. The result depends only on
// the rng state and the configuration.
//
// Every level has the same skeleton: a shaft down column 1 from the start,
// a gallery along the second-to-last row and a dug spawn tile in the top
// right. The interior, bounded by a two-tile margin, gets a chance roll per
// tile for an emerald or a bag. Bags may start over open ground.
func GenerateLevel(rng *rand.Rand, cfg config.DiggerConfig) *Level {
	w, h := cfg.Grid.Width, cfg.Grid.Height
	g := NewGrid(w, h)
	l := &Level{
		Grid:     g,
		Emeralds: make(map[Coord]bool),
		Start:    C(1, 1),
		Spawn:    C(w-2, 1),
		Bonus:    C(w/2, h/2),
	}

	for y := 1; y < h-1; y++ {
		g.Dig(C(1, y))
	}
	for x := 1; x < w-1; x++ {
		g.Dig(C(x, h-2))
	}
	g.Dig(l.Spawn)

	safe := func(c Coord) bool {
		return c.Manhattan(l.Start) <= 1 || c == l.Spawn
	}
	bagAt := make(map[Coord]bool)

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			c := C(x, y)
			r := rng.Float64()
			switch {
			case safe(c):
			case r < cfg.Level.EmeraldChance:
				l.Emeralds[c] = true
			case r < cfg.Level.EmeraldChance+cfg.Level.BagChance && c != l.Bonus:
				l.Bags = append(l.Bags, c)
				bagAt[c] = true
			}
		}
	}

	topUpEmeralds(rng, l, cfg.Level.MinEmeralds, func(c Coord) bool {
		return !safe(c) && !bagAt[c] && !l.Emeralds[c]
	})
	return l
}

// topUpEmeralds fills a shortfall below minimum from a uniform pass over the
// free interior tiles. The pass visits each tile once, so a crowded grid
// ends with fewer emeralds rather than looping.
func topUpEmeralds(rng *rand.Rand, l *Level, minimum int, free func(Coord) bool) {
	w, h := l.Grid.W, l.Grid.H
	for _, c := range shuffledTiles(rng, w-4, h-4) {
		if len(l.Emeralds) >= minimum {
			return
		}
		if c = C(c.X+2, c.Y+2); free(c) {
			l.Emeralds[c] = true
		}
	}
}

// shuffledTiles returns every tile of a w×h area in rng order.
func shuffledTiles(rng *rand.Rand, w, h int) []Coord {
	tiles := make([]Coord, 0, max(0, w*h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tiles = append(tiles, C(x, y))
		}
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return tiles
}
