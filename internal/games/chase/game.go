// Package chase implements Reindeer Chase, an endless runner where Noodles
// the cat jumps candy canes while mountains scroll by.
package chase

import (
	"time"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/registry"
)

// GameID is the registry id and the game_id stored with finished runs.
const GameID = "chase"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the Controller to the registry.Game interface.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.ChaseConfig
	ctrl      *Controller
	cellW     float64 // World units per screen cell
	cellH     float64
	tickCount int
	configErr error
}

// New creates a new Reindeer Chase game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reindeer Chase"
}

// Reset loads configuration and opens the menu with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadChase(configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyChasePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.runtime = runtime
	g.tickCount = 0
	g.setCellSize(runtime)

	g.ctrl = NewController(cfg, g.viewportFor(runtime), core.NewRandom(runtime.Seed))
}

// ConfigError returns the error from the last config load, if any. The game
// falls back to defaults when it is non-nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Resize adapts to a new screen size without ending the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.ctrl == nil {
		g.Reset(runtime)
		return
	}
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.runtime.CellW = runtime.CellW
	g.runtime.CellH = runtime.CellH
	g.setCellSize(runtime)
	g.ctrl.Resize(g.viewportFor(runtime))
}

func (g *Game) setCellSize(runtime core.RuntimeConfig) {
	g.cellW, g.cellH = runtime.CellW, runtime.CellH
	if g.cellW <= 0 {
		g.cellW = g.cfg.Terminal.CellWidth
	}
	if g.cellH <= 0 {
		g.cellH = g.cfg.Terminal.CellHeight
	}
}

func (g *Game) viewportFor(runtime core.RuntimeConfig) Viewport {
	return NewViewport(float64(runtime.ScreenW)*g.cellW, float64(runtime.ScreenH)*g.cellH, g.cfg.World)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1 / float64(tickRate)
	g.tickCount++

	jump := false
	switch g.ctrl.Phase() {
	case PhaseMenu:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.ctrl.Start()
		}
	case PhaseRunning:
		jump = in.Has(core.ActionJump)
	case PhaseEnded:
		again := in.Has(core.ActionJump) || in.Has(core.ActionConfirm)
		if in.Has(core.ActionRestart) || (again && g.ctrl.ResultsReady()) {
			g.ctrl.Restart()
		}
	}

	events := g.ctrl.Update(dt, jump)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.GameOver(),
		Running:  g.ctrl.Phase() == PhaseRunning,
	}
}

// Elapsed returns the simulated time played in the current run. It stops
// counting when the run ends.
func (g *Game) Elapsed() time.Duration {
	if g.ctrl == nil {
		return 0
	}
	return g.ctrl.Elapsed()
}

// Controller exposes the simulation for hosts that draw in world units.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
