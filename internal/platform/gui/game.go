//go:build ebiten

// Package gui runs the floor quiz in a desktop window with ebiten.
// The game still lays itself out in terminal cells; the window scales each
// cell to cellW x cellH pixels and maps clicks back to cells.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/floor-quiz/internal/audio"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

const (
	cellW = 10
	cellH = 20
	cols  = 80
	rows  = 24
)

var (
	bgColor      = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	panelColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonColor  = color.RGBA{R: 210, G: 210, B: 215, A: 255}
	hoverColor   = color.RGBA{R: 255, G: 225, B: 120, A: 255}
	displayColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	ledColor     = color.RGBA{R: 255, G: 80, B: 60, A: 255}
	textColor    = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	dimColor     = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	flashColor   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	bubbleColor  = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

// Window adapts a floor quiz game to the ebiten.Game interface.
type Window struct {
	game       *floorquiz.Game
	store      *storage.Store
	player     audio.Player
	logger     *log.Logger
	state      core.GameState
	scoreSaved bool
	mouseX     int
	mouseY     int
}

// Available reports whether this build can open a window.
func Available() bool { return true }

// NewWindow creates a window for game. store and player may be nil.
func NewWindow(game *floorquiz.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg.ScreenW, cfg.ScreenH = cols, rows
	game.Reset(cfg)
	return &Window{game: game, store: store, player: player, logger: logger}
}

// Update reads input and advances the game by one tick.
func (w *Window) Update() error {
	in := core.NewInputFrame()

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if k == ebiten.KeyQ {
			w.player.StopMusic()
			return ebiten.Termination
		}
		if d, ok := digitFor(k); ok {
			in.TypeDigit(d)
			continue
		}
		if a, ok := actionFor(k); ok {
			in.Set(a)
		}
	}

	// Back on the title or the game-over screen closes the window
	if in.Has(core.ActionBack) && (w.state.GameOver || w.game.Scene() == floorquiz.SceneMain) {
		w.player.StopMusic()
		return ebiten.Termination
	}

	// Only real motion moves the hover, so the keyboard cursor survives a still mouse
	mx, my := ebiten.CursorPosition()
	if mx != w.mouseX || my != w.mouseY {
		w.mouseX, w.mouseY = mx, my
		in.MovePointer(mx/cellW, my/cellH)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click(mx/cellW, my/cellH)
	}

	result := w.game.Step(in)
	w.state = result.State
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventCorrect:
			w.player.PlaySuccess()
		case core.EventWrong:
			w.player.PlayError()
		case core.EventSceneChanged:
			if e.Scene == floorquiz.SceneGame {
				w.player.StartMusic()
			} else {
				w.player.StopMusic()
			}
		}
	}

	if !w.state.GameOver {
		w.scoreSaved = false
	} else if !w.scoreSaved {
		w.save()
		w.scoreSaved = true
	}
	return nil
}

func (w *Window) save() {
	if w.store == nil || w.state.Score <= 0 {
		return
	}
	st := w.game.Stats()
	_, err := w.store.SaveResult(storage.Result{
		GameID:      w.game.ID(),
		Score:       st.Score,
		Correct:     st.Correct,
		Wrong:       st.Wrong,
		DurationSec: st.DurationSec,
	})
	if err != nil {
		w.logger.Warn("could not save score", "err", err)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	snap := w.game.Snapshot()

	switch snap.Scene {
	case floorquiz.SceneGame:
		drawPlay(screen, snap)
	case floorquiz.SceneGameOver:
		centered(screen, 7, "Game Over", textColor)
		centered(screen, 10, fmt.Sprintf("Score: %d", snap.Stats.Score), textColor)
		centered(screen, 12, fmt.Sprintf("Correct: %d  Wrong: %d  Accuracy: %d%%",
			snap.Stats.Correct, snap.Stats.Wrong, snap.Stats.Accuracy()), dimColor)
		centered(screen, 15, "Press Space to restart", textColor)
		centered(screen, 17, "Esc: close  Q: quit", dimColor)
	default:
		centered(screen, 7, "What's the floor?", textColor)
		centered(screen, 10, "Press Space to start", textColor)
		centered(screen, 12, "Use the buttons to answer the math questions", dimColor)
		centered(screen, 20, "Made with ebiten", dimColor)
	}

	if snap.Paused {
		vector.DrawFilledRect(screen, 30*cellW, 10*cellH, 20*cellW, 3*cellH, color.RGBA{A: 200}, false)
		centered(screen, 11, "Paused", textColor)
	}
}

func drawPlay(screen *ebiten.Image, snap floorquiz.Snapshot) {
	scoreColor := textColor
	if snap.Flashing {
		scoreColor = flashColor
	}
	cellText(screen, 2, 1, fmt.Sprintf("Score: %d", snap.Score), scoreColor)
	if snap.TimeLeft >= 0 {
		cellText(screen, 2, 2, fmt.Sprintf("Time: %d", snap.TimeLeft), textColor)
	} else {
		cellText(screen, 2, 2, "Practice", dimColor)
	}

	// Question bubble
	vector.DrawFilledRect(screen, 3*cellW, 8*cellH, 28*cellW, 3*cellH, bubbleColor, true)
	cellText(screen, 5, 9, snap.Question+" = ?", displayColor)

	if len(snap.Buttons) == 0 {
		return
	}

	// Panel plate behind the buttons and the display
	minX, minY, maxX, maxY := snap.Buttons[0].Rect.X, snap.Buttons[0].Rect.Y, 0, 0
	for _, b := range snap.Buttons {
		minX = min(minX, b.Rect.X)
		minY = min(minY, b.Rect.Y)
		maxX = max(maxX, b.Rect.X+b.Rect.W)
		maxY = max(maxY, b.Rect.Y+b.Rect.H)
	}
	top := max(minY-4, 0)
	vector.DrawFilledRect(screen, px(minX-1), py(top), px(maxX-minX+2), py(maxY-top+1), panelColor, false)

	// Floor display
	vector.DrawFilledRect(screen, px(minX), py(top+1), px(maxX-minX), py(2), displayColor, false)
	display := strings.TrimSpace(snap.Display)
	cellText(screen, minX+(maxX-minX-len(display))/2, top+1, display, ledColor)

	for i, b := range snap.Buttons {
		c := b.Rect.Center()
		fill := buttonColor
		if i == snap.Highlight {
			fill = hoverColor
		}
		cx := float32(c.X*cellW + cellW/2)
		cy := float32(c.Y*cellH + cellH/2)
		r := float32(b.Rect.H*cellH) / 2
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
		vector.StrokeCircle(screen, cx, cy, r, 2, displayColor, true)
		label := fmt.Sprintf("%d", b.Floor)
		cellText(screen, c.X-(len(label)-1)/2, c.Y, label, displayColor)
	}
}

func px(cells int) float32 { return float32(cells * cellW) }
func py(cells int) float32 { return float32(cells * cellH) }

// cellText draws s with its first character in cell (x, y).
func cellText(dst *ebiten.Image, x, y int, s string, clr color.Color) {
	// basicfont draws from the baseline, so drop most of a cell
	text.Draw(dst, s, basicfont.Face7x13, x*cellW, y*cellH+14, clr)
}

func centered(dst *ebiten.Image, y int, s string, clr color.Color) {
	width := len(s) * basicfont.Face7x13.Advance
	text.Draw(dst, s, basicfont.Face7x13, (cols*cellW-width)/2, y*cellH+14, clr)
}

// Layout returns the logical screen size.
func (w *Window) Layout(int, int) (int, int) {
	return cols * cellW, rows * cellH
}

// Run opens the window and plays until it is closed.
func Run(game *floorquiz.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	w := NewWindow(game, store, player, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cols*cellW, rows*cellH)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
