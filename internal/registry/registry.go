// Package registry maps game ids to factories. The digger package registers
// itself from init under "digger"; cmd/digger blank-imports it and looks the
// game up by id, so neither the CLI nor the Bubble Tea platform imports the
// game package by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-digger/internal/core"
)

// Game is what the platform drives: one fixed-timestep simulation fed an
// input frame per tick. Implementations do no terminal I/O.
type Game interface {
	// ID keys score rows and the lookups made by the CLI.
	ID() string

	Title() string

	// Reset rebuilds the world from the seed and tick rate in cfg and
	// leaves it on its start menu.
	Reset(cfg core.RuntimeConfig)

	// Step runs exactly one tick and reports the round state and the
	// names of the events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst and must cope with any screen size.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo is a registered id and its title, as listed by `digger list`.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering an id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a fresh game for id. Call Reset before stepping it.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
