package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floor-quiz/internal/audio"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/registry"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

// resizer is implemented by games that can re-lay out without losing the session.
type resizer interface {
	Resize(screenW, screenH int)
}

// statsReporter is implemented by games that count answers.
type statsReporter interface {
	Stats() floorquiz.Stats
}

// sceneReporter is implemented by games with named scenes.
type sceneReporter interface {
	Scene() string
}

// GameModel is the Bubble Tea model for one running game.
// It maps input, drives the tick loop, plays audio for game events and
// saves the score once per finished session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	player     audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	exitOnBack bool // Standalone play: Back on the game-over screen ends the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	gen        uint64
}

// GameOption customizes a GameModel.
type GameOption func(*GameModel)

// WithRenderer sets the screen renderer (SSH sessions use one per client).
func WithRenderer(r *ScreenRenderer) GameOption {
	return func(m *GameModel) { m.renderer = r }
}

// WithLogger sets the logger for storage warnings.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) { m.logger = l }
}

// WithExitOnBack makes Back on the game-over screen quit the program.
func WithExitOnBack() GameOption {
	return func(m *GameModel) { m.exitOnBack = true }
}

// NewGameModel creates a model for game. store and player may be nil.
func NewGameModel(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if player == nil {
		player = audio.Nop{}
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   defaultRenderer,
		store:      store,
		player:     player,
		logger:     log.Default(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        nextGen(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back leaves the game from the title, the game-over screen or the pause overlay
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && m.canLeave() {
		m.player.StopMusic()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.player.StopMusic()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) canLeave() bool {
	if m.gameState.GameOver || m.gameState.Paused {
		return true
	}
	if sr, ok := m.game.(sceneReporter); ok {
		return sr.Scene() == floorquiz.SceneMain
	}
	return false
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	// Save score on game over (once); restarting clears the flag
	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleEvent turns game events into sounds.
func (m GameModel) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventCorrect:
		m.player.PlaySuccess()
	case core.EventWrong:
		m.player.PlayError()
	case core.EventSceneChanged:
		if e.Scene == floorquiz.SceneGame {
			m.player.StartMusic()
		} else {
			m.player.StopMusic()
		}
	}
}

// saveResult stores the finished session. Only positive scores are kept.
func (m GameModel) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	res := storage.Result{GameID: m.game.ID(), Score: m.gameState.Score}
	if sr, ok := m.game.(statsReporter); ok {
		st := sr.Stats()
		res.Correct, res.Wrong, res.DurationSec = st.Correct, st.Wrong, st.DurationSec
	}
	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Warn("could not save score", "game", res.GameID, "score", res.Score, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".floorquiz", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or leaves.
func Run(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	opts := []GameOption{WithExitOnBack()}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	model := NewGameModel(game, store, player, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
