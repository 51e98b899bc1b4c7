package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-digger/internal/core"
	_ "github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// scriptedGame reports whatever state the test puts in it.
type scriptedGame struct {
	state  core.GameState
	frames []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(s *core.Screen) { s.DrawText(0, 0, "scripted", core.ColorWhite) }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

var testRuntime = core.RuntimeConfig{Seed: 1, ScreenW: 120, ScreenH: 30, TickRate: 60}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newDiggerModel(t *testing.T) Model {
	t.Helper()
	game, err := registry.Create("digger")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return NewModel(game, nil, testRuntime, Options{HoldTicks: 3, ScreenshotDir: t.TempDir()})
}

func TestModelStartPauseAndQuit(t *testing.T) {
	m := newDiggerModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	if m.gameState.Paused || m.gameState.GameOver {
		t.Fatalf("unexpected state after start %+v", m.gameState)
	}

	// q while playing pauses instead of quitting
	m, _ = send(t, m, runeKey('q'))
	m, cmd := tick(t, m)
	if !m.gameState.Paused || isQuit(cmd) {
		t.Fatalf("expected pause on q, got %+v", m.gameState)
	}

	m, _ = send(t, m, runeKey('q'))
	m, cmd = tick(t, m)
	if !isQuit(cmd) || !m.quitting {
		t.Error("expected q from pause to quit the program")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newDiggerModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || !m.quitting {
		t.Error("expected ctrl+c to quit")
	}
}

func TestModelHeldDirection(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime, Options{HoldTicks: 2})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, runeKey(' '))
	for i := 0; i < 3; i++ {
		m, _ = tick(t, m)
	}

	if len(game.frames) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionRight) || !game.frames[0].Has(core.ActionFire) {
		t.Errorf("first frame %v", game.frames[0].Actions)
	}
	if !game.frames[1].Has(core.ActionRight) || game.frames[1].Has(core.ActionFire) {
		t.Errorf("second frame should hold right only, got %v", game.frames[1].Actions)
	}
	if game.frames[2].Has(core.ActionRight) {
		t.Error("hold should have expired by the third frame")
	}
}

func TestModelPauseReleasesDirection(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime, Options{HoldTicks: 10})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runeKey('p'))
	m, _ = tick(t, m)

	if f := game.frames[0]; f.Has(core.ActionLeft) || !f.Has(core.ActionPause) {
		t.Errorf("expected pause without a held direction, got %v", f.Actions)
	}
}

func TestModelPausedDirectionIsOneShot(t *testing.T) {
	game := &scriptedGame{state: core.GameState{Paused: true}}
	m := NewModel(game, nil, testRuntime, Options{HoldTicks: 10})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	if !game.frames[0].Has(core.ActionDown) {
		t.Errorf("first paused frame should carry the key, got %v", game.frames[0].Actions)
	}
	if game.frames[1].Has(core.ActionDown) {
		t.Error("a paused direction should not be held")
	}
}

func TestModelPauseMenuQuit(t *testing.T) {
	m := newDiggerModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m, _ = send(t, m, runeKey('p'))
	m, _ = tick(t, m)
	if !m.gameState.Paused {
		t.Fatal("expected pause")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = tick(t, m)
	if !strings.Contains(m.View(), "> Quit") {
		t.Error("down should highlight the quit entry")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := tick(t, m)
	if !isQuit(cmd) {
		t.Error("confirming quit should end the program")
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := NewModel(game, store, testRuntime, Options{})

	game.state = core.GameState{Score: 1500, Level: 3, GameOver: true}
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1500 || scores[0].Level != 3 {
		t.Fatalf("expected one saved score, got %+v", scores)
	}
	if m.highScore != 1500 {
		t.Errorf("expected high score updated, got %d", m.highScore)
	}

	// A restarted game that ends again is saved again
	game.state = core.GameState{Score: 10, Level: 1, Lives: 3}
	m, _ = tick(t, m)
	game.state = core.GameState{Score: 700, Level: 2, GameOver: true}
	m, _ = tick(t, m)

	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("expected two saved scores, got %d", len(scores))
	}
	if m.highScore != 1500 {
		t.Errorf("high score should stay 1500, got %d", m.highScore)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, testRuntime, Options{})
	tick(t, m)

	if scores, _ := store.TopScores("scripted", 10); len(scores) != 0 {
		t.Errorf("zero score should not be saved, got %+v", scores)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newDiggerModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		m, _ = tick(t, m)
	}
	before := m.game.State()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if after := m.game.State(); after != before {
		t.Errorf("resize changed game state: %+v -> %+v", before, after)
	}
}

func TestModelView(t *testing.T) {
	m := newDiggerModel(t)
	out := m.View()
	for _, want := range []string{"DIGGER", "Best: 0", "fire"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime, Options{ScreenshotDir: dir})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status == "" {
		t.Error("expected a status message after screenshot")
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "scripted_*.txt"))
	if len(matches) != 1 {
		t.Errorf("expected one screenshot file, got %v", matches)
	}
}
