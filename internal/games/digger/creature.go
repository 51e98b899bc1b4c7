package digger

import "math"

// arriveEpsilon is the distance below which a mover counts as on its target.
const arriveEpsilon = 1e-6

// CreatureKind is a creature's capability profile.
type CreatureKind int

const (
	// CreatureGround walks dug tunnels only.
	CreatureGround CreatureKind = iota
	// CreatureDigger walks through earth and digs it.
	CreatureDigger
)

func (k CreatureKind) String() string {
	if k == CreatureDigger {
		return "digger"
	}
	return "ground"
}

// Creature is a monster that hunts the player. Both kinds share one
// movement routine; Kind only changes walkability and whether it digs.
type Creature struct {
	ID     int
	X, Y   float64
	Target Coord
	Kind   CreatureKind
	Alive  bool

	from      Coord
	transform float64 // Seconds until a ground creature becomes a digger
	bornTick  uint64
}

func newCreature(id int, at Coord, transform float64, tick uint64) *Creature {
	return &Creature{
		ID:        id,
		X:         float64(at.X),
		Y:         float64(at.Y),
		Target:    at,
		Kind:      CreatureGround,
		Alive:     true,
		from:      at,
		transform: transform,
		bornTick:  tick,
	}
}

// Tile returns the tile the creature occupies, by rounding its position.
func (c *Creature) Tile() Coord {
	return Coord{X: int(math.Round(c.X)), Y: int(math.Round(c.Y))}
}

// TransformIn returns the seconds left before a ground creature transforms.
func (c *Creature) TransformIn() float64 {
	return c.transform
}

func (c *Creature) arrived() bool {
	return math.Abs(c.X-float64(c.Target.X)) < arriveEpsilon &&
		math.Abs(c.Y-float64(c.Target.Y)) < arriveEpsilon
}

// creatureEnv is what the creature AI needs from its world.
type creatureEnv interface {
	walkable(kind CreatureKind, c Coord) bool
	gridSize() (w, h int)
	playerTile() Coord
	bonusActive() bool
	intn(n int) int
	dig(c Coord)
	emit(e Event)
}

// update runs the transformation timer, picks a new target on arrival and
// moves toward the target at speed tiles per second.
func (c *Creature) update(dt, speed float64, env creatureEnv) {
	if c.Kind == CreatureGround {
		c.transform -= dt
		if c.transform <= 0 {
			c.transform = 0
			c.Kind = CreatureDigger
			env.emit(Event{Kind: EventCreatureTransformed, At: c.Tile()})
		}
	}

	if c.arrived() {
		c.X, c.Y = float64(c.Target.X), float64(c.Target.Y)
		c.from = c.Target
		next := c.chooseTarget(env)
		if next != c.Target && c.Kind == CreatureDigger {
			env.dig(next)
		}
		c.Target = next
	} else if !env.walkable(c.Kind, c.Target) {
		// The way ahead closed (a bag was pushed or landed there); turn back.
		c.Target, c.from = c.from, c.Target
	}

	c.X, c.Y = moveToward(c.X, c.Y, c.Target, speed*dt)
}

// chooseTarget picks the next tile: flee in bonus mode, otherwise the first
// step of a shortest path to the player, otherwise a random neighbor.
func (c *Creature) chooseTarget(env creatureEnv) Coord {
	here := c.Target
	walk := func(t Coord) bool { return env.walkable(c.Kind, t) }

	if env.bonusActive() {
		if next, ok := FleeStep(here, env.playerTile(), walk); ok {
			return next
		}
		return here
	}

	w, h := env.gridSize()
	if next, ok := NextStep(w, h, here, env.playerTile(), walk); ok {
		return next
	}
	if options := Neighbors(here, walk); len(options) > 0 {
		return options[env.intn(len(options))]
	}
	return here
}

// moveToward moves (x, y) up to step units along a straight line to target,
// snapping onto it when it is within reach.
func moveToward(x, y float64, target Coord, step float64) (float64, float64) {
	tx, ty := float64(target.X), float64(target.Y)
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step+arriveEpsilon {
		return tx, ty
	}
	return x + dx/dist*step, y + dy/dist*step
}
