package digger

// BagState is the physics state of a bag.
type BagState int

const (
	BagResting BagState = iota
	BagWobbling
	BagFalling
	BagTreasure
)

func (s BagState) String() string {
	switch s {
	case BagResting:
		return "resting"
	case BagWobbling:
		return "wobbling"
	case BagFalling:
		return "falling"
	case BagTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Bag is a gold bag. It sits on a discrete tile; while falling, Offset is the
// sub-tile distance travelled below Pos.
type Bag struct {
	ID     int
	Pos    Coord
	State  BagState
	Offset float64
	Fallen int // Whole tiles fallen in the current fall

	wobble  float64
	removed bool
}

// Solid reports whether the bag blocks movement and pathing.
func (b *Bag) Solid() bool {
	return b.State == BagResting || b.State == BagWobbling
}

// Wobble returns the time left before a wobbling bag drops.
func (b *Bag) Wobble() float64 {
	return b.wobble
}

// bagPhysics holds the tunables of the bag state machine.
type bagPhysics struct {
	WobbleTime  float64
	FallSpeed   float64
	TreasureMin int
}

// bagEnv is what a bag needs from its world. The world answers support
// queries by coordinate so bags never reference each other.
type bagEnv interface {
	// hasSupport reports whether the tile under at holds the bag up.
	hasSupport(at Coord) bool
	// dig turns earth at c into tunnel.
	dig(c Coord)
	// crush kills whatever occupies c, except the falling bag itself.
	crush(c Coord, by *Bag)
	emit(e Event)
}

// update advances the bag state machine by dt seconds.
func (b *Bag) update(dt float64, env bagEnv, p bagPhysics) {
	switch b.State {
	case BagResting:
		if !env.hasSupport(b.Pos) {
			b.State = BagWobbling
			b.wobble = p.WobbleTime
			env.emit(Event{Kind: EventBagWobbled, At: b.Pos})
		}

	case BagWobbling:
		if env.hasSupport(b.Pos) {
			b.State = BagResting
			b.wobble = 0
			return
		}
		b.wobble -= dt
		if b.wobble <= 0 {
			b.wobble = 0
			b.State = BagFalling
			b.Offset = 0
			b.Fallen = 0
			// A bag embedded in earth leaves a hole behind.
			env.dig(b.Pos)
			env.emit(Event{Kind: EventBagDropped, At: b.Pos})
		}

	case BagFalling:
		env.crush(b.Pos, b)
		b.Offset += p.FallSpeed * dt
		for b.Offset >= 1 {
			if env.hasSupport(b.Pos) {
				b.land(env, p)
				return
			}
			b.Offset--
			b.Pos = b.Pos.Below()
			b.Fallen++
			env.crush(b.Pos, b)
			if env.hasSupport(b.Pos) {
				b.land(env, p)
				return
			}
		}

	case BagTreasure:
		// Terminal until collected.
	}
}

// land ends a fall. Falls of TreasureMin tiles or more break the bag open.
func (b *Bag) land(env bagEnv, p bagPhysics) {
	treasure := b.Fallen >= p.TreasureMin
	if treasure {
		b.State = BagTreasure
	} else {
		b.State = BagResting
	}
	b.Offset = 0
	b.Fallen = 0
	env.emit(Event{Kind: EventBagLanded, At: b.Pos, Treasure: treasure})
}
