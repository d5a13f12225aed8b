// Package scene switches between named game screens.
//
// A scene is entered with parameters (the game-over scene receives the final
// score) and then stepped and rendered until another scene is requested.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

// ErrUnknownScene is returned by Go for a name that was never registered.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Params carries values into a scene on entry.
type Params map[string]int

// Int returns a parameter or def when it is missing.
func (p Params) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Scene is one screen of the game.
type Scene interface {
	// Enter is called every time the scene becomes active.
	Enter(p Params)

	// Step advances the scene by one tick. It may request a switch through the manager.
	Step(m *Manager, in core.InputFrame)

	// Render draws the scene into a pre-cleared screen.
	Render(dst *core.Screen)
}

// Manager owns the registered scenes and the active one.
type Manager struct {
	scenes  map[string]Scene
	current string
	events  []core.Event
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{scenes: make(map[string]Scene)}
}

// Register adds a scene. Registering the same name twice panics,
// the same way the game registry treats duplicate IDs.
func (m *Manager) Register(name string, s Scene) {
	if _, exists := m.scenes[name]; exists {
		panic(fmt.Sprintf("scene: %q already registered", name))
	}
	m.scenes[name] = s
}

// Names returns the registered scene names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.scenes))
	for name := range m.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Go switches to the named scene and enters it with p.
// On error the current scene stays active.
func (m *Manager) Go(name string, p Params) error {
	s, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	m.current = name
	s.Enter(p)
	m.Emit(core.Event{Kind: core.EventSceneChanged, Scene: name})
	return nil
}

// Name returns the active scene name, or "" before the first Go.
func (m *Manager) Name() string {
	return m.current
}

// Current returns the active scene, or nil before the first Go.
func (m *Manager) Current() Scene {
	return m.scenes[m.current]
}

// Emit queues an event for the platform.
func (m *Manager) Emit(e core.Event) {
	m.events = append(m.events, e)
}

// Step steps the active scene and returns the events raised during it,
// including any raised since the last Step (such as by an initial Go).
func (m *Manager) Step(in core.InputFrame) []core.Event {
	if s := m.Current(); s != nil {
		s.Step(m, in)
	}
	return m.Drain()
}

// Drain returns and clears the queued events.
func (m *Manager) Drain() []core.Event {
	if len(m.events) == 0 {
		return nil
	}
	out := m.events
	m.events = nil
	return out
}

// Render draws the active scene.
func (m *Manager) Render(dst *core.Screen) {
	if s := m.Current(); s != nil {
		s.Render(dst)
	}
}
