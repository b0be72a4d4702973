package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arena/internal/core"
	"github.com/vovakirdan/arena/internal/registry"
	"github.com/vovakirdan/arena/internal/storage"
)

// Options carries the per-player settings of a game model.
type Options struct {
	Player     string      // label stored with finished runs
	Difficulty string      // preset name stored with finished runs
	Logger     *log.Logger // nil discards
	InMenu     bool        // the model was opened from a menu and may return to it
}

// timed is implemented by games that report how long the current run lasted.
type timed interface {
	Elapsed() time.Duration
}

// logged is implemented by games that emit their own run events.
type logged interface {
	SetLogger(*log.Logger)
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keyMapper *KeyMapper
	input     *HeldInput
	gameState core.GameState

	lastTick   time.Time
	runID      string
	scoreSaved bool // whether the current run has been recorded
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		input:     NewHeldInput(DefaultHoldWindow, DefaultRepeatDelay),
		runID:     uuid.NewString(),
	}
	if lg, ok := game.(logged); ok && opts.Logger != nil {
		lg.SetLogger(opts.Logger)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses; they take effect on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered when nothing is in play. A session
	// swallows the quit and shows its menu again.
	if action == core.ActionBack {
		if m.opts.InMenu && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.input.Press(action, time.Now())
	return m, nil
}

// handleResize keeps the run going on the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	elapsed := frameElapsed(m.lastTick, now)
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Advance(elapsed, m.input.Frame(now))
	m.gameState = result.State

	// A restart begins a new run
	if wasOver && !m.gameState.GameOver {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.input.Release()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Storage errors never stop the game.
func (m GameModel) recordRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.RunRecord{
		RunID:      m.runID,
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Difficulty: m.opts.Difficulty,
		Score:      m.gameState.Score,
		Wave:       m.gameState.Wave,
		Kills:      m.gameState.Kills,
	}
	if t, ok := m.game.(timed); ok {
		run.Duration = t.Elapsed()
	}

	_, err := m.store.SaveRun(run)
	switch {
	case errors.Is(err, storage.ErrRunExists):
		// already recorded
	case err != nil:
		m.logger.Warn("could not save run", "run", m.runID, "err", err)
	default:
		m.logger.Info("run saved", "run", m.runID, "score", run.Score, "wave", run.Wave)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// RunID returns the identifier the current run is saved under.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// It reports whether the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
