package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/storage"
)

// scriptedGame starts a run on Jump and ends it after endAfter running ticks.
type scriptedGame struct {
	cfg      core.RuntimeConfig
	state    core.GameState
	ticks    int
	endAfter int
	resets   int
	resizes  int
	lastIn   core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = core.GameState{}
	g.resets++
}

func (g *scriptedGame) Resize(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.resizes++
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			g.lastIn.Set(a)
		}
	}

	var events []core.Event
	if !g.state.Running && in.Has(core.ActionJump) {
		g.state = core.GameState{Running: true}
		g.ticks = 0
	}
	if g.state.Running {
		g.ticks++
		if g.ticks%10 == 0 {
			g.state.Score++
			events = append(events, core.Event{Kind: core.EventScoreChanged, Value: g.state.Score})
		}
		if g.ticks == g.endAfter {
			g.state.Running = false
			g.state.GameOver = true
			events = append(events, core.Event{Kind: core.EventRunEnded, Value: g.state.Score})
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) Elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / time.Duration(g.cfg.TickRate)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(t *testing.T, game *scriptedGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	m := NewModel(game, store, cfg, Options{Difficulty: "hard", Logger: quietLogger()})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestModelReservesHelpRow(t *testing.T) {
	game := &scriptedGame{}
	newTestModel(t, game, nil)

	if game.cfg.ScreenW != 40 || game.cfg.ScreenH != 11 {
		t.Errorf("game size = %dx%d, expected 40x11", game.cfg.ScreenW, game.cfg.ScreenH)
	}

	hidden := &scriptedGame{}
	m := NewModel(hidden, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12}, Options{HideHelp: true, Logger: quietLogger()})
	m.Init()
	if hidden.cfg.ScreenH != 12 {
		t.Errorf("HideHelp should give the game every row, got %d", hidden.cfg.ScreenH)
	}
	if hidden.cfg.TickRate != 60 {
		t.Errorf("TickRate should default to 60, got %d", hidden.cfg.TickRate)
	}
}

func TestModelKeysReachGameOnNextTick(t *testing.T) {
	game := &scriptedGame{endAfter: 1000}
	m := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 1)

	if !game.lastIn.Has(core.ActionJump) {
		t.Error("space should reach the game as ActionJump")
	}
	if !m.State().Running {
		t.Error("run should have started")
	}

	m = tick(t, m, 1)
	if game.lastIn.Has(core.ActionJump) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelMouseClickJumps(t *testing.T) {
	game := &scriptedGame{endAfter: 1000}
	m := newTestModel(t, game, nil)

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(t, m, 1)

	if !game.lastIn.Has(core.ActionJump) {
		t.Error("left click should jump")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("quitting model should render nothing, got %q", view)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 120}
	m := newTestModel(t, game, store)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 200)

	if !m.State().GameOver {
		t.Fatal("run should have ended")
	}
	if m.LastSavedRun() == 0 {
		t.Fatal("finished run should be saved")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 12 {
		t.Errorf("Score = %d, expected 12", r.Score)
	}
	if r.Difficulty != "hard" || r.Seed != 7 {
		t.Errorf("run metadata = %+v", r)
	}
	// 120 running ticks at 60 Hz, as reported by the game
	if r.Duration != 2*time.Second {
		t.Errorf("Duration = %v, expected 2s", r.Duration)
	}
	if m.Best() != 12 {
		t.Errorf("Best() = %d, expected the new run's 12", m.Best())
	}
}

func TestModelBestStartsFromStore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.RunRecord{GameID: "scripted", Score: 20}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	game := &scriptedGame{endAfter: 120}
	m := newTestModel(t, game, store)
	if m.Best() != 20 {
		t.Fatalf("Best() = %d, expected the stored 20", m.Best())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 200)
	if m.Best() != 20 {
		t.Errorf("a lower run should not replace the best, got %d", m.Best())
	}
}

func TestModelWithoutStoreKeepsPlaying(t *testing.T) {
	game := &scriptedGame{endAfter: 30}
	m := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 40)

	if !m.State().GameOver {
		t.Error("run should end without a store")
	}
	if m.LastSavedRun() != 0 {
		t.Error("nothing should be saved without a store")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &scriptedGame{endAfter: 1000}
	m := newTestModel(t, game, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 25)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resizes != 1 || game.resets != 1 {
		t.Errorf("resize should not reset, resizes=%d resets=%d", game.resizes, game.resets)
	}
	if game.cfg.ScreenW != 100 || game.cfg.ScreenH != 29 {
		t.Errorf("game size = %dx%d, expected 100x29", game.cfg.ScreenW, game.cfg.ScreenH)
	}
	if m.State().Score != 2 {
		t.Errorf("score should survive resize, got %d", m.State().Score)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view should fill 30 rows, got %d", len(lines))
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, nil)

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "jump") || !strings.Contains(view, "quit") {
		t.Errorf("view should end with the key help, got %q", view)
	}
}
