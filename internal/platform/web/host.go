// Package web hosts Reindeer Chase in an Ebitengine window. The same code
// runs on the desktop and in the browser (GOOS=js GOARCH=wasm).
package web

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/games/chase"
	"github.com/vovakirdan/reindeer-chase/internal/registry"
)

// Host adapts a chase.Game to ebiten.Game. One window pixel is one world unit.
type Host struct {
	game    *chase.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	face    *text.GoXFace

	frame   core.InputFrame
	state   core.GameState
	started bool
	width   int // Last layout size
	height  int
	best    int

	// Scratch buffers for polygon fills
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewHost creates a host for game. A zero seed picks one from the clock.
func NewHost(game *chase.Game, seed int64, logger *log.Logger) *Host {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "reindeer-web",
		})
	}
	return &Host{
		game:   game,
		logger: logger,
		face:   text.NewGoXFace(basicfont.Face7x13),
		frame:  core.NewInputFrame(),
		runtime: core.RuntimeConfig{
			TickRate: ebiten.TPS(),
			Seed:     seed,
			CellW:    1,
			CellH:    1,
		},
	}
}

// Update advances the simulation by one tick.
func (h *Host) Update() error {
	if h.width <= 0 || h.height <= 0 {
		return nil
	}
	if !h.started {
		h.game.Reset(h.runtime)
		if err := h.game.ConfigError(); err != nil {
			h.logger.Warn("using default config", "error", err)
		}
		h.started = true
	}

	h.readInput()
	result := h.game.Step(h.frame)
	h.frame.Clear()
	h.state = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventRunEnded {
			if e.Value > h.best {
				h.best = e.Value
			}
			h.logger.Info("run ended", "score", e.Value, "best", h.best)
		}
	}
	return nil
}

// readInput maps this frame's presses to actions.
func (h *Host) readInput() {
	keys := inpututil.AppendJustPressedKeys(nil)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	touches := len(inpututil.AppendJustPressedTouchIDs(nil))
	for _, a := range actionsFor(keys, clicked || touches > 0) {
		h.frame.Set(a)
	}
}

// actionsFor translates pressed keys and pointer presses to game actions.
func actionsFor(keys []ebiten.Key, pointer bool) []core.Action {
	var actions []core.Action
	if pointer {
		actions = append(actions, core.ActionJump)
	}
	for _, k := range keys {
		switch k {
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
			actions = append(actions, core.ActionJump)
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			actions = append(actions, core.ActionConfirm)
		case ebiten.KeyR:
			actions = append(actions, core.ActionRestart)
		}
	}
	return actions
}

// Layout keeps the logical screen equal to the window so the viewport tracks
// the window size. A size change resizes the running game in place.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hh := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != h.width || hh != h.height {
		h.width, h.height = w, hh
		h.runtime.ScreenW, h.runtime.ScreenH = w, hh
		if h.started {
			registry.Resize(h.game, h.runtime)
		}
	}
	return w, hh
}

// State returns the state seen on the last update.
func (h *Host) State() core.GameState {
	return h.state
}
