// Package floorquiz implements the elevator floor quiz: solve the arithmetic
// question by pressing the elevator button for the answer before the timer runs out.
package floorquiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/floor-quiz/internal/config"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/quiz"
	"github.com/vovakirdan/floor-quiz/internal/registry"
	"github.com/vovakirdan/floor-quiz/internal/scene"
)

// Scene names.
const (
	SceneMain     = "main"
	SceneGame     = "game"
	SceneGameOver = "game-over"
)

// Mode represents the game mode.
type Mode string

const (
	ModeTimed    Mode = "timed"    // Countdown from timer.seconds
	ModePractice Mode = "practice" // No countdown, ends on Back
)

// Game IDs.
const (
	IDTimed    = "floorquiz"
	IDPractice = "floorquiz_practice"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the config from the path set by SetConfigPath, applies the
// difficulty preset and validates the result.
func LoadConfig() (config.FloorQuizConfig, error) {
	cfg, err := config.LoadFloorQuiz(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyFloorQuizPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Game implements the floor quiz.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.FloorQuizConfig
	cfgFixed   bool // cfg was injected and must not be reloaded on Reset
	cfgErr     error
	difficulty *config.DifficultyManager

	rng    *rand.Rand
	gen    *quiz.Generator
	panel  *Panel
	scenes *scene.Manager

	title *titleScene
	play  *playScene
	over  *gameOverScene

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a timed game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewPractice creates an untimed practice game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// NewWithConfig creates a game that uses cfg instead of loading one on Reset.
func NewWithConfig(mode Mode, cfg config.FloorQuizConfig) (*Game, error) {
	if mode != ModeTimed && mode != ModePractice {
		return nil, fmt.Errorf("floorquiz: unknown mode %q", mode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{mode: mode, cfg: cfg, cfgFixed: true}, nil
}

func init() {
	registry.Register(IDTimed, func() registry.Game {
		return New()
	})
	registry.Register(IDPractice, func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return IDPractice
	}
	return IDTimed
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "What's the Floor? (Practice)"
	}
	return "What's the Floor?"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModePractice {
		return "No timer. Answer at your own pace, Esc to finish."
	}
	return "Press the elevator button for the answer before time runs out."
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Config returns the active configuration.
func (g *Game) Config() config.FloorQuizConfig {
	return g.cfg
}

// ConfigErr returns the error that made Reset fall back to the default config, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Reset initializes the game and shows the title scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	if !g.cfgFixed {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultFloorQuizConfig()
		}
		g.cfg, g.cfgErr = cfg, err
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	gen, err := quiz.NewGenerator(g.cfg.QuestionOptions(), g.rng)
	if err != nil {
		// Unreachable for validated configs
		gen, _ = quiz.NewGenerator(quiz.DefaultOptions(), g.rng)
	}
	g.gen = gen

	g.panel = NewPanel(g.cfg.Panel.Buttons, g.cfg.Panel.Columns)
	g.layout(runtime.ScreenW, runtime.ScreenH)

	g.tick = 0
	g.paused = false

	g.title = &titleScene{game: g}
	g.play = newPlayScene(g)
	g.over = &gameOverScene{game: g}

	g.scenes = scene.NewManager()
	g.scenes.Register(SceneMain, g.title)
	g.scenes.Register(SceneGame, g.play)
	g.scenes.Register(SceneGameOver, g.over)
	_ = g.scenes.Go(SceneMain, nil)
}

// Resize re-lays out the screen without touching the session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.panel != nil {
		g.layout(screenW, screenH)
	}
}

func (g *Game) layout(screenW, screenH int) {
	minW, minH := g.panel.MinSize()
	g.tooSmall = screenW < minW || screenH < minH
	g.panel.Layout(screenW, screenH)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: g.scenes.Drain()}
	}

	// Pause only applies while a session is running
	if g.scenes.Name() == SceneGame && input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: g.scenes.Drain()}
	}

	events := g.scenes.Step(input)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
// GameOver is true while the game-over scene is showing.
func (g *Game) State() core.GameState {
	if g.scenes == nil {
		return core.GameState{}
	}
	over := g.scenes.Name() == SceneGameOver
	score := g.play.score.Get()
	if over {
		score = g.over.score
	}
	return core.GameState{
		Score:    score,
		GameOver: over,
		Paused:   g.paused || g.tooSmall,
	}
}

// Scene returns the active scene name.
func (g *Game) Scene() string {
	if g.scenes == nil {
		return ""
	}
	return g.scenes.Name()
}

// Stats returns the counts for the current or just-finished session.
func (g *Game) Stats() Stats {
	if g.scenes != nil && g.scenes.Name() == SceneGameOver {
		return g.over.stats
	}
	if g.play == nil {
		return Stats{}
	}
	return g.play.stats()
}

// Stats summarizes one session.
type Stats struct {
	Score       int
	Correct     int
	Wrong       int
	DurationSec int // Whole seconds played, pauses excluded
}

// Accuracy returns the percentage of correct presses, 0 when nothing was pressed.
func (s Stats) Accuracy() int {
	total := s.Correct + s.Wrong
	if total == 0 {
		return 0
	}
	return s.Correct * 100 / total
}
