package digger

import "math"

// Shot is a projectile fired by the player. It flies straight until it
// leaves the grid, hits earth, or strikes a creature.
type Shot struct {
	X, Y   float64
	Dir    Direction
	Speed  float64
	Active bool
}

func newShot(at Coord, dir Direction, speed float64) *Shot {
	if dir == DirNone {
		dir = DirRight
	}
	return &Shot{X: float64(at.X), Y: float64(at.Y), Dir: dir, Speed: speed, Active: true}
}

// Tile returns the tile the shot occupies, by rounding its position.
func (s *Shot) Tile() Coord {
	return Coord{X: int(math.Round(s.X)), Y: int(math.Round(s.Y))}
}

// advance moves the shot and returns the tiles it passed through this tick,
// starting with the tile it was in, in travel order.
func (s *Shot) advance(dt float64) []Coord {
	from := s.Tile()
	dx, dy := s.Dir.Delta()
	s.X += float64(dx) * s.Speed * dt
	s.Y += float64(dy) * s.Speed * dt
	to := s.Tile()

	swept := []Coord{from}
	for c := from; c != to; {
		c = c.Step(s.Dir)
		swept = append(swept, c)
	}
	return swept
}
