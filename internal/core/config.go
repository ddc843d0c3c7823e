package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// CellW and CellH are the world units covered by one screen cell.
	// Zero means "use the game's configured terminal cell size";
	// pixel hosts set both to 1.
	CellW float64
	CellH float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current run has ended
	Running  bool // Whether a run is in progress
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventRunEnded
	EventBandRecycled
	EventObstacleSpawned
	EventObstacleRecycled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventRunEnded:
		return "RunEnded"
	case EventBandRecycled:
		return "BandRecycled"
	case EventObstacleSpawned:
		return "ObstacleSpawned"
	case EventObstacleRecycled:
		return "ObstacleRecycled"
	default:
		return "Unknown"
	}
}

// Event is a notification emitted by the simulation for presentation hooks.
// Value carries the new score for score/run events and the entity id
// (band id or pool slot) for recycle and spawn events.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
