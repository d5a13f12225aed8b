package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floor-quiz/internal/audio"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/registry"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewScoreboard
	viewGame
)

// SessionModel manages the full flow in one program: menu -> game or
// scoreboard -> menu. Local menu play and SSH sessions both use it.
type SessionModel struct {
	store     *storage.Store
	player    audio.Player
	logger    *log.Logger
	lg        *lipgloss.Renderer
	config    core.RuntimeConfig
	username  string
	view      sessionView
	menu      MenuModel
	board     ScoreboardModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
// lg renders styles for the client terminal; nil means the local terminal.
func NewSessionModel(store *storage.Store, player audio.Player, cfg core.RuntimeConfig, username string, lg *lipgloss.Renderer, logger *log.Logger) SessionModel {
	if player == nil {
		player = audio.Nop{}
	}
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := SessionModel{
		store:    store,
		player:   player,
		logger:   logger,
		lg:       lg,
		config:   cfg,
		username: username,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.store, m.config).Embedded(m.lg)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH).Embedded(m.lg)
		m.view = viewScoreboard
		return m, m.board.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.logger.Error("could not create game", "game", selected.GameID, "err", err)
			m.menu = m.newMenu()
			return m, nil
		}

		m.config.Seed = 0 // Fresh questions every round
		gameModel := NewGameModel(game, m.store, m.player, m.config,
			WithRenderer(NewScreenRenderer(m.lg)),
			WithLogger(m.logger),
		)
		m.gameModel = &gameModel
		m.view = viewGame
		m.logger.Debug("game started", "user", m.username, "game", selected.GameID)

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates while the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user left the game (back to menu)
	if m.gameModel.BackToMenu() {
		m.view = viewMenu
		m.gameModel = nil
		// Reload so a new best shows up
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case viewScoreboard:
		return m.board.View()
	}
	return m.menu.View()
}

// InGame reports whether a round is on screen.
func (m SessionModel) InGame() bool {
	return m.view == viewGame && m.gameModel != nil
}

// RunSession runs the menu, scoreboard and game flow in the local terminal.
func RunSession(store *storage.Store, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(store, player, cfg, "local", nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
