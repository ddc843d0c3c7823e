package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/reindeer-chase/internal/core"
)

type stubGame struct {
	resets  int
	resizes int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type resizableStub struct {
	stubGame
}

func (g *resizableStub) Resize(core.RuntimeConfig) { g.resizes++ }

type timedStub struct {
	stubGame
	elapsed time.Duration
}

func (g *timedStub) Elapsed() time.Duration { return g.elapsed }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-test", func() Game { return &stubGame{} })

	if !Exists("stub-test") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("stub-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-test" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return &stubGame{} })
}

func TestResizePrefersResizer(t *testing.T) {
	plain := &stubGame{}
	Resize(plain, core.DefaultConfig())
	if plain.resets != 1 {
		t.Errorf("plain game should be reset, resets = %d", plain.resets)
	}

	resizable := &resizableStub{}
	Resize(resizable, core.DefaultConfig())
	if resizable.resizes != 1 || resizable.resets != 0 {
		t.Errorf("resizable game should be resized in place, resizes=%d resets=%d", resizable.resizes, resizable.resets)
	}
}

func TestRunDuration(t *testing.T) {
	if got := RunDuration(&stubGame{}); got != 0 {
		t.Errorf("untimed game should report 0, got %v", got)
	}
	if got := RunDuration(&timedStub{elapsed: 3 * time.Second}); got != 3*time.Second {
		t.Errorf("RunDuration() = %v, expected 3s", got)
	}
}
