// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI and the SSH
// server can create sessions without importing game internals.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface the platform drives.
// Implementations hold pure logic; the platform owns timing, input mapping and output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh game for the given screen and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's input and advances the simulation by the
	// wall-clock time elapsed since the previous tick.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// It must not change game state.
	Render(dst *core.Screen)

	// State returns the current coarse game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
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

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
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

// Create instantiates a new game by its ID.
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
