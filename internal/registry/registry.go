// Package registry provides a global registry of playable levels.
// Level packages register themselves in init() functions, allowing the
// front-ends to discover and start levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
)

// Game is the interface the front-ends drive.
// Games contain pure logic with no external dependencies (especially no Bubble Tea
// or Ebitengine). The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the level identifier. Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a character screen.
	Render(dst *core.Screen)

	// State returns the current game state (score, paused, cleared).
	State() core.GameState

	// Snapshot returns a read-only copy of the world for pixel renderers.
	Snapshot() platformer.Snapshot
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID        string
	Title     string
	Platforms int
	Tokens    int
}

// Factory returns a fresh copy of a level description.
type Factory func() platformer.Level

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered or the level is invalid.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	lvl := f()
	if err := lvl.Validate(); err != nil {
		panic(fmt.Sprintf("registry: level %q: %v", id, err))
	}

	factories[id] = f

	title := lvl.Name
	if title == "" {
		title = id
	}
	infos[id] = LevelInfo{
		ID:        id,
		Title:     title,
		Platforms: len(lvl.Platforms),
		Tokens:    len(lvl.Tokens),
	}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Level returns a fresh copy of a registered level.
func Level(id string) (platformer.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return platformer.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}
	return f(), nil
}

// Create instantiates a new game for a registered level.
// Returns an error if the level ID is not registered.
func Create(id string, opts ...platformer.Option) (Game, error) {
	lvl, err := Level(id)
	if err != nil {
		return nil, err
	}
	return platformer.New(lvl, opts...), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
