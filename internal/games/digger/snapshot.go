package digger

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
)

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	X, Y     float64
	Tile     Coord
	Facing   Direction
	Cooldown float64
	Alive    bool
}

// BagView is a read-only copy of a bag.
type BagView struct {
	ID     int
	Pos    Coord
	State  BagState
	Offset float64
	Wobble float64
}

// CreatureView is a read-only copy of a living creature.
type CreatureView struct {
	ID          int
	X, Y        float64
	Tile        Coord
	Kind        CreatureKind
	TransformIn float64
}

// ShotView is a read-only copy of an active shot.
type ShotView struct {
	X, Y float64
	Tile Coord
	Dir  Direction
}

// Snapshot captures the complete renderable state for determinism testing
// and drawing. It shares no memory with the World.
type Snapshot struct {
	Tick  uint64
	Round RoundState
	Pause PauseOption // Highlighted pause menu entry
	Quit  bool

	Score    int
	Lives    int
	Level    int
	NextLife int

	W, H     int
	Cells    []Cell  // Row-major
	Emeralds []Coord // Sorted by row, then column
	Start    Coord
	Spawn    Coord

	Player    PlayerView
	Bags      []BagView
	Creatures []CreatureView
	Shots     []ShotView

	BonusItem   *Coord // Nil unless the bonus item is waiting
	BonusActive bool
	BonusLeft   float64
	Chain       int
	NextKill    int // Points the next bonus kill is worth
	Streak      int

	Spawned int
	Killed  int
	Quota   int
}

// Cell returns the cell at c. Out-of-bounds reads as tunnel, matching Grid.
func (s Snapshot) Cell(c Coord) Cell {
	if c.X < 0 || c.X >= s.W || c.Y < 0 || c.Y >= s.H {
		return Tunnel
	}
	return s.Cells[c.Y*s.W+c.X]
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:     w.tick,
		Round:    w.round,
		Pause:    w.pauseOption,
		Quit:     w.quit,
		Score:    w.score,
		Lives:    w.lives,
		Level:    w.level,
		NextLife: w.nextLife,
		W:        w.grid.W,
		H:        w.grid.H,
		Cells:    w.grid.Cells(),
		Start:    w.start,
		Spawn:    w.spawn,
		Player: PlayerView{
			X:        p.X,
			Y:        p.Y,
			Tile:     p.Tile(),
			Facing:   p.Facing,
			Cooldown: p.Cooldown,
			Alive:    p.Alive,
		},
		BonusActive: w.bonusOn,
		BonusLeft:   w.bonusLeft,
		Chain:       w.chain,
		NextKill:    w.scoring.BonusKill(w.chain),
		Streak:      w.streak,
		Spawned:     w.spawned,
		Killed:      w.killed,
		Quota:       w.quota,
	}

	snap.Emeralds = make([]Coord, 0, len(w.emeralds))
	for c := range w.emeralds {
		snap.Emeralds = append(snap.Emeralds, c)
	}
	sort.Slice(snap.Emeralds, func(i, j int) bool {
		a, b := snap.Emeralds[i], snap.Emeralds[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, b := range w.bags {
		snap.Bags = append(snap.Bags, BagView{ID: b.ID, Pos: b.Pos, State: b.State, Offset: b.Offset, Wobble: b.wobble})
	}
	for _, c := range w.creatures {
		if !c.Alive {
			continue
		}
		snap.Creatures = append(snap.Creatures, CreatureView{
			ID:          c.ID,
			X:           c.X,
			Y:           c.Y,
			Tile:        c.Tile(),
			Kind:        c.Kind,
			TransformIn: c.transform,
		})
	}
	for _, s := range w.shots {
		if s.Active {
			snap.Shots = append(snap.Shots, ShotView{X: s.X, Y: s.Y, Tile: s.Tile(), Dir: s.Dir})
		}
	}
	if w.bonusVisible {
		at := w.bonusAt
		snap.BonusItem = &at
	}
	return snap
}

// Hash returns a 64-bit digest of the snapshot, for comparing long runs.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	putCoord := func(c Coord) {
		putInt(int64(c.X))
		putInt(int64(c.Y))
	}

	putInt(int64(s.Tick))
	putInt(int64(s.Round))
	putInt(int64(s.Score))
	putInt(int64(s.Lives))
	putInt(int64(s.Level))
	for _, c := range s.Cells {
		h.Write([]byte{byte(c)})
	}
	for _, c := range s.Emeralds {
		putCoord(c)
	}
	putFloat(s.Player.X)
	putFloat(s.Player.Y)
	putInt(int64(s.Player.Facing))
	for _, b := range s.Bags {
		putInt(int64(b.ID))
		putCoord(b.Pos)
		putInt(int64(b.State))
		putFloat(b.Offset)
	}
	for _, c := range s.Creatures {
		putInt(int64(c.ID))
		putFloat(c.X)
		putFloat(c.Y)
		putInt(int64(c.Kind))
	}
	for _, sh := range s.Shots {
		putFloat(sh.X)
		putFloat(sh.Y)
	}
	putFloat(s.BonusLeft)
	putInt(int64(s.Chain))
	return h.Sum64()
}
