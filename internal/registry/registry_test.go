package registry

import (
	"testing"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "with words" }

func TestRegistryRegisterAndList(t *testing.T) {
	r := New()
	r.Register("zeta", func() Game { return &stubGame{id: "zeta", title: "Zeta"} })
	r.Register("alpha", func() Game {
		return &describedGame{stubGame{id: "alpha", title: "Alpha"}}
	})

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(list))
	}
	if list[0].ID != "alpha" || list[1].ID != "zeta" {
		t.Errorf("List() should sort by ID, got %+v", list)
	}
	if list[0].Description != "with words" || list[1].Description != "" {
		t.Errorf("descriptions = %q, %q", list[0].Description, list[1].Description)
	}

	info, ok := r.Info("zeta")
	if !ok || info.Title != "Zeta" {
		t.Errorf("Info(zeta) = %+v, %v", info, ok)
	}
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register("one", func() Game { return &stubGame{id: "one"} })

	g, err := r.Create("one")
	if err != nil {
		t.Fatalf("Create(one) failed: %v", err)
	}
	if g.ID() != "one" {
		t.Errorf("created game ID = %q", g.ID())
	}

	if _, err := r.Create("two"); err == nil {
		t.Error("Create(two) should fail")
	}
	if !r.Exists("one") || r.Exists("two") {
		t.Error("Exists gave wrong answer")
	}
}

func TestRegistryPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func(r *Registry)
	}{
		{"duplicate", func(r *Registry) {
			r.Register("a", func() Game { return &stubGame{id: "a"} })
			r.Register("a", func() Game { return &stubGame{id: "a"} })
		}},
		{"mismatched id", func(r *Registry) {
			r.Register("a", func() Game { return &stubGame{id: "b"} })
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.run(New())
		})
	}
}
