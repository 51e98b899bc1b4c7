package digger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/registry"
)

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("digger is not registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Digger" {
		t.Errorf("unexpected game %q %q", g.ID(), g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 1500; i++ {
		input.Clear()
		switch {
		case i == 0:
			input.Set(core.ActionConfirm)
		case i%200 < 50:
			input.Set(core.ActionLeft)
		case i%200 < 100:
			input.Set(core.ActionDown)
		case i%200 < 150:
			input.Set(core.ActionRight)
		default:
			input.Set(core.ActionUp)
		}
		if i%37 == 0 {
			input.Set(core.ActionFire)
		}
		input.Set(core.ActionRestart)

		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Player != s2.Player {
		t.Errorf("snapshots differ: tick %d/%d score %d/%d", s1.Tick, s2.Tick, s1.Score, s2.Score)
	}
	if s1.Hash() != s2.Hash() {
		t.Error("snapshot hashes differ")
	}
}

func TestIntentsFromFrame(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    Intents
	}{
		{"nothing", nil, Intents{}},
		{"up beats right", []core.Action{core.ActionRight, core.ActionUp}, Intents{Dir: DirUp}},
		{"down beats left", []core.Action{core.ActionLeft, core.ActionDown}, Intents{Dir: DirDown}},
		{"left beats right", []core.Action{core.ActionRight, core.ActionLeft}, Intents{Dir: DirLeft}},
		{"fire and move", []core.Action{core.ActionFire, core.ActionRight}, Intents{Dir: DirRight, Fire: true}},
		{"discrete actions", []core.Action{core.ActionPause, core.ActionConfirm, core.ActionRestart, core.ActionQuit},
			Intents{Pause: true, Confirm: true, Restart: true, Quit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			if got := IntentsFromFrame(in); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStepReportsState(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	st := g.State()
	if st.Lives != 3 || st.Level != 1 || st.GameOver || st.Paused {
		t.Fatalf("unexpected initial state %+v", st)
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := g.Step(pause); !res.State.Paused {
		t.Error("expected paused state")
	}

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	if res := g.Step(quit); !res.State.Quit {
		t.Error("expected quit from pause")
	}
}

func TestStepEventNames(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	g.World().LoadLevel(MustParseLevel(
		"P###",
		"##ES",
	))
	g.World().Start()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	var names []string
	for i := 0; i < 10; i++ {
		names = append(names, g.Step(in).Events...)
	}

	found := false
	for _, name := range names {
		if name == "dug" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a dug event once the player reaches (1,0), got %v", names)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24, TickRate: 60})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score:", "Lives: 3", "Level: 1", "DIGGER"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "DIGGER") {
		t.Error("menu overlay still drawn while playing")
	}
	if !strings.Contains(out, "D>") {
		t.Error("player not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 20, ScreenH: 8, TickRate: 60})

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t,
		"P.E#",
		"#e.S",
	)
	snap := w.Snapshot()
	snap.Cells[1] = Earth
	if !w.grid.IsTunnel(C(1, 0)) {
		t.Error("mutating the snapshot changed the grid")
	}
	if len(snap.Emeralds) != 2 || snap.Emeralds[0] != C(2, 0) || snap.Emeralds[1] != C(1, 1) {
		t.Errorf("expected emeralds in row order, got %v", snap.Emeralds)
	}
}
