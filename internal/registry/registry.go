// Package registry maps game mode IDs to factories.
// Modes register themselves in init() so front ends can list and create them
// without importing each mode by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

// Game is what every playable mode implements.
// Games hold pure logic; the platform handles input mapping, timing, audio and rendering.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage (e.g. "floorquiz").
	ID() string

	// Title is the display name.
	Title() string

	// Reset initializes or restarts the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score and lifecycle flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description for menus.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

// Registry is a set of game factories. The zero value is not usable; call New.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	infos     map[string]GameInfo
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		infos:     make(map[string]GameInfo),
	}
}

// Register adds a factory. Panics if the ID is already taken or the
// factory builds a game whose ID() does not match.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// A throwaway instance supplies the title and description
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}

	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	r.factories[id] = f
	r.infos[id] = info
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.infos))
	for _, info := range r.infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns metadata for one game.
func (r *Registry) Info(id string) (GameInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.infos[id]
	return info, ok
}

// Create instantiates a game by ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// defaultRegistry backs the package-level functions used by init() registration.
var defaultRegistry = New()

// Register adds a factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List lists the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Info looks up a game in the default registry.
func Info(id string) (GameInfo, bool) { return defaultRegistry.Info(id) }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists checks the default registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
