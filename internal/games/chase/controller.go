package chase

import (
	"time"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Phase is the run loop state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// RunState is the score of one run. Once GameOver is set it never changes.
type RunState struct {
	Score    int
	GameOver bool
}

// AddPoint increments the score unless the run has ended.
func (r *RunState) AddPoint() bool {
	if r.GameOver {
		return false
	}
	r.Score++
	return true
}

// End marks the run as over. Returns false if it already was.
func (r *RunState) End() bool {
	if r.GameOver {
		return false
	}
	r.GameOver = true
	return true
}

// SpawnSchedule owns the single pending obstacle spawn timer.
type SpawnSchedule struct {
	timers  core.Scheduler
	pending *core.TimerHandle
}

// NewSpawnSchedule creates a schedule with nothing pending.
func NewSpawnSchedule(timers core.Scheduler) *SpawnSchedule {
	return &SpawnSchedule{timers: timers}
}

// Next replaces any pending spawn with fn after delay.
func (s *SpawnSchedule) Next(delay time.Duration, fn func()) {
	s.pending.Cancel()
	s.pending = s.timers.ScheduleOnce(delay, fn)
}

// Cancel drops the pending spawn. Returns false if nothing was pending.
func (s *SpawnSchedule) Cancel() bool {
	return s.pending.Cancel()
}

// Pending reports whether a spawn is waiting to fire.
func (s *SpawnSchedule) Pending() bool {
	return s.pending.Pending()
}

// Controller drives one session: the mountain background, the player, the
// obstacle pool and the spawn and end-of-run timers. It is not safe for
// concurrent use; the host calls it from its frame loop.
type Controller struct {
	cfg        config.ChaseConfig
	rng        core.Random
	difficulty *config.DifficultyModel
	timers     *core.Timers
	viewport   Viewport

	mountains *MountainField
	player    *Player
	pool      *ObstaclePool
	run       *RunState
	schedule  *SpawnSchedule

	phase        Phase
	resultsReady bool
	endTimer     *core.TimerHandle
	elapsed      time.Duration

	events []core.Event
}

// NewController creates a controller in the menu phase.
func NewController(cfg config.ChaseConfig, viewport Viewport, rng core.Random) *Controller {
	c := &Controller{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
		timers:     core.NewTimers(),
		viewport:   viewport,
		phase:      PhaseMenu,
	}
	c.mountains = NewMountainField(cfg.Mountains, viewport, rng, func(id int) {
		c.emit(core.EventBandRecycled, id)
	})
	c.newRun()
	return c
}

// newRun replaces the run state, pool, schedule and player.
func (c *Controller) newRun() {
	c.run = &RunState{}
	c.pool = NewObstaclePool(c.cfg.Obstacles, c.rng)
	c.pool.OnRecycle = func(slot int) {
		c.emit(core.EventObstacleRecycled, slot)
	}
	c.schedule = NewSpawnSchedule(c.timers)
	c.player = NewPlayer(c.cfg.Player, c.viewport.GroundY)
	c.resultsReady = false
	c.elapsed = 0
}

func (c *Controller) emit(kind core.EventKind, value int) {
	c.events = append(c.events, core.Event{Kind: kind, Value: value})
}

// Start begins the first run from the menu.
func (c *Controller) Start() bool {
	if c.phase != PhaseMenu {
		return false
	}
	c.phase = PhaseRunning
	c.scheduleSpawn()
	return true
}

// Restart replaces the ended run with a brand-new one.
func (c *Controller) Restart() bool {
	if c.phase != PhaseEnded {
		return false
	}
	c.endTimer.Cancel()
	c.schedule.Cancel()
	c.newRun()
	c.phase = PhaseRunning
	c.emit(core.EventScoreChanged, 0)
	c.scheduleSpawn()
	return true
}

func (c *Controller) scheduleSpawn() {
	c.schedule.Next(c.difficulty.SpawnDelay(c.rng), c.spawn)
}

// spawn fires from the spawn timer and always schedules its successor.
func (c *Controller) spawn() {
	if c.run.GameOver {
		return
	}
	spawnX := c.viewport.Width + c.cfg.Obstacles.SpawnOffset
	if slot, ok := c.pool.Spawn(c.Speed(), spawnX); ok {
		c.emit(core.EventObstacleSpawned, slot)
	}
	c.scheduleSpawn()
}

// Update advances the session by dt seconds and returns the events that
// occurred since the previous call.
func (c *Controller) Update(dt float64, jump bool) []core.Event {
	step := time.Duration(dt * float64(time.Second))
	c.timers.Advance(step)

	c.mountains.Scroll(dt)

	if c.phase == PhaseRunning {
		c.elapsed += step

		if jump {
			c.player.Jump()
		}
		c.player.Update(dt, c.viewport.GroundY)

		passed := c.pool.Tick(c.Speed(), dt)
		for i := 0; i < passed; i++ {
			if c.run.AddPoint() {
				c.emit(core.EventScoreChanged, c.run.Score)
			}
		}

		// Positions are final for this tick.
		if _, hit := c.pool.CheckCollision(c.player.Bounds(), c.viewport.GroundY); hit {
			c.HandleCollision()
		}
	}

	events := c.events
	c.events = nil
	return events
}

// HandleCollision ends the running run. Calls outside a run or after the
// first are no-ops.
func (c *Controller) HandleCollision() {
	if c.phase != PhaseRunning {
		return
	}
	if !c.run.End() {
		return
	}
	c.schedule.Cancel()
	c.phase = PhaseEnded
	c.emit(core.EventRunEnded, c.run.Score)

	delay := time.Duration(c.cfg.World.EndDelayMs) * time.Millisecond
	c.endTimer = c.timers.ScheduleOnce(delay, func() {
		c.resultsReady = true
	})
}

// Resize recomputes screen-relative state for a new viewport. The mountain
// field is rebuilt; score, obstacles and the player's run survive.
func (c *Controller) Resize(viewport Viewport) {
	c.viewport = viewport
	c.mountains.Rebuild(viewport)
	c.player.SetGround(viewport.GroundY)
}

// Speed returns the obstacle speed for the current score.
func (c *Controller) Speed() float64 {
	return c.difficulty.Speed(c.run.Score)
}

// SpeedSaturated reports whether the current score has pushed the speed to
// its cap.
func (c *Controller) SpeedSaturated() bool {
	at := c.difficulty.SaturatedAt()
	return at >= 0 && c.run.Score >= at
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the current run's score.
func (c *Controller) Score() int { return c.run.Score }

// GameOver reports whether the current run has ended.
func (c *Controller) GameOver() bool { return c.run.GameOver }

// ResultsReady reports whether the end-of-run delay has elapsed.
func (c *Controller) ResultsReady() bool { return c.resultsReady }

// Elapsed returns the simulated time spent running in the current run.
func (c *Controller) Elapsed() time.Duration { return c.elapsed }

// SpawnPending reports whether an obstacle spawn is scheduled.
func (c *Controller) SpawnPending() bool { return c.schedule.Pending() }

// Viewport returns the current viewport.
func (c *Controller) Viewport() Viewport { return c.viewport }

// Mountains returns the background field.
func (c *Controller) Mountains() *MountainField { return c.mountains }

// Player returns the player.
func (c *Controller) Player() *Player { return c.player }

// Pool returns the obstacle pool of the current run.
func (c *Controller) Pool() *ObstaclePool { return c.pool }

// Difficulty returns the difficulty model.
func (c *Controller) Difficulty() *config.DifficultyModel { return c.difficulty }
