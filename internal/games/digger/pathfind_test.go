package digger

import "testing"

func openArea(w, h int) WalkFunc {
	return func(c Coord) bool {
		return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
	}
}

func TestNextStepStraightCorridor(t *testing.T) {
	tests := []struct {
		name        string
		w, h        int
		start, goal Coord
	}{
		{"right", 8, 1, C(0, 0), C(7, 0)},
		{"left", 8, 1, C(6, 0), C(1, 0)},
		{"down", 1, 6, C(0, 0), C(0, 5)},
		{"up", 1, 6, C(0, 4), C(0, 0)},
		{"adjacent", 8, 1, C(3, 0), C(4, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStep(tt.w, tt.h, tt.start, tt.goal, openArea(tt.w, tt.h))
			if !ok {
				t.Fatal("expected a path")
			}
			if got, want := next.Manhattan(tt.goal), tt.start.Manhattan(tt.goal)-1; got != want {
				t.Errorf("step %v leaves distance %d, want %d", next, got, want)
			}
		})
	}
}

func TestNextStepFixedOrder(t *testing.T) {
	walk := openArea(3, 3)
	first, ok := NextStep(3, 3, C(0, 0), C(2, 2), walk)
	if !ok {
		t.Fatal("expected a path")
	}
	// Down is explored before right, so the path goes down first.
	if first != C(0, 1) {
		t.Errorf("expected (0,1), got %v", first)
	}
	for i := 0; i < 10; i++ {
		if again, _ := NextStep(3, 3, C(0, 0), C(2, 2), walk); again != first {
			t.Fatalf("run %d chose %v, first run chose %v", i, again, first)
		}
	}
}

func TestNextStepNoPath(t *testing.T) {
	wall := func(c Coord) bool { return c.X != 2 && c.X >= 0 && c.X < 5 && c.Y >= 0 && c.Y < 3 }
	if _, ok := NextStep(5, 3, C(0, 1), C(4, 1), wall); ok {
		t.Error("expected no path through the wall")
	}
	if _, ok := NextStep(5, 3, C(1, 1), C(1, 1), wall); ok {
		t.Error("expected no step when already at the goal")
	}
}

func TestFleeStep(t *testing.T) {
	walk := openArea(3, 3)
	next, ok := FleeStep(C(1, 1), C(0, 1), walk)
	if !ok {
		t.Fatal("expected a flee step")
	}
	// Up, down and right all reach distance 2; up comes first.
	if next != C(1, 0) {
		t.Errorf("expected (1,0), got %v", next)
	}

	boxed := func(c Coord) bool { return c == C(1, 1) }
	if _, ok := FleeStep(C(1, 1), C(0, 0), boxed); ok {
		t.Error("expected no flee step when boxed in")
	}
}

func TestGroundCreatureChasesAlongCorridor(t *testing.T) {
	w := newTestWorld(t,
		"P......",
		"######E",
		"S######",
	)
	c := addCreature(w, C(5, 0))
	if got := c.chooseTarget(w); got != C(4, 0) {
		t.Errorf("expected (4,0), got %v", got)
	}
}

func TestCreatureFleesInBonusMode(t *testing.T) {
	w := newTestWorld(t,
		"P......",
		"######E",
		"S######",
	)
	c := addCreature(w, C(3, 0))
	w.startBonus()
	if got := c.chooseTarget(w); got != C(4, 0) {
		t.Errorf("expected flight to (4,0), got %v", got)
	}
}

func TestCreatureWalkability(t *testing.T) {
	w := newTestWorld(t,
		"P.B.S",
		"###.E",
	)
	tests := []struct {
		name string
		kind CreatureKind
		at   Coord
		want bool
	}{
		{"ground in tunnel", CreatureGround, C(1, 0), true},
		{"ground in earth", CreatureGround, C(0, 1), false},
		{"digger in earth", CreatureDigger, C(0, 1), true},
		{"ground into bag", CreatureGround, C(2, 0), false},
		{"digger into bag", CreatureDigger, C(2, 0), false},
		{"off the grid", CreatureDigger, C(-1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.walkable(tt.kind, tt.at); got != tt.want {
				t.Errorf("walkable(%v, %v) = %v, want %v", tt.kind, tt.at, got, tt.want)
			}
		})
	}
}

func TestCreatureTransformsAndDigs(t *testing.T) {
	w := newTestWorld(t,
		"P###S",
		"####E",
	)
	c := newCreature(1, C(4, 0), dt/2, 0)
	w.creatures = append(w.creatures, c)
	w.spawned++
	w.events = nil

	c.update(dt, w.creatureSpeed, w)

	if c.Kind != CreatureDigger {
		t.Fatalf("expected transformation, got %v", c.Kind)
	}
	if CountEvents(w.events, EventCreatureTransformed) != 1 {
		t.Error("expected CreatureTransformed event")
	}
	if c.Target != C(3, 0) {
		t.Fatalf("expected digger to head for (3,0), got %v", c.Target)
	}
	if !w.grid.IsTunnel(C(3, 0)) || CountEvents(w.events, EventDug) != 1 {
		t.Error("expected digger to dig its next tile")
	}
}

func TestCreatureTurnsBackWhenBlocked(t *testing.T) {
	w := newTestWorld(t,
		"P....",
		"####E",
		"####S",
	)
	c := addCreature(w, C(3, 0))
	c.update(dt, w.creatureSpeed, w)
	if c.Target != C(2, 0) {
		t.Fatalf("expected target (2,0), got %v", c.Target)
	}

	w.bags = append(w.bags, &Bag{ID: 50, Pos: C(2, 0)})
	c.update(dt, w.creatureSpeed, w)
	if c.Target != C(3, 0) {
		t.Errorf("expected creature to turn back to (3,0), got %v", c.Target)
	}
}
