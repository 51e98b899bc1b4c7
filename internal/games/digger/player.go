package digger

import "math"

// Player is the digger controlled by input. Position is continuous and
// always lies on the segment between the last target and Target.
type Player struct {
	X, Y     float64
	Target   Coord
	Facing   Direction
	Wanted   Direction // Most recent directional intent
	Speed    float64
	Cooldown float64 // Seconds until the next shot may be fired
	Alive    bool

	from Coord // Tile the player is moving away from
}

func newPlayer(at Coord, speed float64) Player {
	return Player{
		X:      float64(at.X),
		Y:      float64(at.Y),
		Target: at,
		from:   at,
		Facing: DirRight,
		Speed:  speed,
		Alive:  true,
	}
}

// Tile returns the tile the player occupies, by rounding its position.
func (p *Player) Tile() Coord {
	return Coord{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

func (p *Player) arrived() bool {
	return math.Abs(p.X-float64(p.Target.X)) < arriveEpsilon &&
		math.Abs(p.Y-float64(p.Target.Y)) < arriveEpsilon
}

func (p *Player) advance(dt float64) {
	p.X, p.Y = moveToward(p.X, p.Y, p.Target, p.Speed*dt)
}
