package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/registry"
	"github.com/vovakirdan/reindeer-chase/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game.
const helpRows = 1

// Options tunes a terminal session.
type Options struct {
	// Difficulty is the preset name stored with finished runs.
	Difficulty string

	// Logger receives storage and config warnings. Defaults to stderr.
	Logger *log.Logger

	// HideHelp drops the key help line and gives the row to the game.
	HideHelp bool
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastSaved  int64
	best       int // Highest stored score for the game
	quitting   bool
}

// configErrorer is implemented by games that fall back to defaults on a
// broken config file.
type configErrorer interface {
	ConfigError() error
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; the help line is carved out here.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "reindeer",
		})
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.config = m.gameConfig(cfg.ScreenW, cfg.ScreenH, cfg)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		m.best = best
	}
	return m
}

// gameConfig returns cfg resized to the area left for the game.
func (m Model) gameConfig(width, height int, cfg core.RuntimeConfig) core.RuntimeConfig {
	if !m.opts.HideHelp {
		height -= helpRows
	}
	cfg.ScreenW = max(width, 1)
	cfg.ScreenH = max(height, 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(configErrorer); ok && ce.ConfigError() != nil {
		m.logger.Warn("using default config", "error", ce.ConfigError())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the game to the new terminal size. Games that
// implement registry.Resizer keep their run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config = m.gameConfig(msg.Width, msg.Height, m.config)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	registry.Resize(m.game, m.config)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventRunEnded {
			m.saveRun(e.Value)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Failures are logged and play continues.
func (m *Model) saveRun(score int) {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Score:      score,
		Difficulty: m.opts.Difficulty,
		Seed:       m.config.Seed,
		Duration:   registry.RunDuration(m.game),
	})
	if err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
		return
	}
	m.lastSaved = id

	if score > m.best {
		m.logger.Info("new high score", "score", score, "previous", m.best)
		m.best = score
	}
}

// saveScreenshot writes the current screen to ~/.reindeer/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".reindeer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.opts.HideHelp {
		return view
	}
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Best returns the highest stored score, including runs from this session.
func (m Model) Best() int {
	return m.best
}

// LastSavedRun returns the id of the most recently stored run, or 0.
func (m Model) LastSavedRun() int64 {
	return m.lastSaved
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
