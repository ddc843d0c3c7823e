package chase

import (
	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Obstacle is one pool slot. Inactive slots are invisible and never collide.
type Obstacle struct {
	X         float64 // Horizontal centre in world units
	Width     float64
	Height    float64 // Rolled height; also the hitbox height
	VelocityX float64 // Negative, units per second
	Active    bool
}

// Rect returns the collision rectangle for an obstacle standing on groundY.
func (o Obstacle) Rect(groundY float64) core.Rect {
	return core.RectFromCenter(o.X, groundY-o.Height/2, o.Width, o.Height)
}

// ObstaclePool is a fixed-capacity arena of obstacle slots.
type ObstaclePool struct {
	cfg   config.ObstacleConfig
	rng   core.Random
	slots []Obstacle

	// OnRecycle is called with the slot index when an obstacle leaves the
	// screen and is deactivated.
	OnRecycle func(slot int)
}

// NewObstaclePool allocates every slot up front.
func NewObstaclePool(cfg config.ObstacleConfig, rng core.Random) *ObstaclePool {
	capacity := cfg.PoolCapacity
	if capacity < 1 {
		capacity = 1
	}
	return &ObstaclePool{
		cfg:   cfg,
		rng:   rng,
		slots: make([]Obstacle, capacity),
	}
}

// Spawn activates a free slot at spawnX moving left at speed. When every
// slot is active the request is dropped and ok is false.
func (p *ObstaclePool) Spawn(speed, spawnX float64) (slot int, ok bool) {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		p.slots[i] = Obstacle{
			X:         spawnX,
			Width:     p.cfg.Width,
			Height:    core.Uniform(p.rng, p.cfg.MinHeight, p.cfg.MaxHeight),
			VelocityX: -speed,
			Active:    true,
		}
		return i, true
	}
	return -1, false
}

// Tick resyncs every active obstacle to the current speed, moves it by dt
// seconds and deactivates those past the recycle threshold. It returns how
// many obstacles were passed this tick.
func (p *ObstaclePool) Tick(speed, dt float64) (passed int) {
	for i := range p.slots {
		o := &p.slots[i]
		if !o.Active {
			continue
		}
		o.VelocityX = -speed
		o.X += o.VelocityX * dt

		if o.X < p.cfg.RecycleX {
			o.Active = false
			passed++
			if p.OnRecycle != nil {
				p.OnRecycle(i)
			}
		}
	}
	return passed
}

// CheckCollision returns the first active obstacle overlapping player.
func (p *ObstaclePool) CheckCollision(player core.Rect, groundY float64) (slot int, hit bool) {
	for i, o := range p.slots {
		if o.Active && player.Intersects(o.Rect(groundY)) {
			return i, true
		}
	}
	return -1, false
}

// ActiveCount returns the number of active obstacles.
func (p *ObstaclePool) ActiveCount() int {
	n := 0
	for _, o := range p.slots {
		if o.Active {
			n++
		}
	}
	return n
}

// Obstacles returns every slot, active or not.
func (p *ObstaclePool) Obstacles() []Obstacle {
	return p.slots
}

// Capacity returns the number of slots.
func (p *ObstaclePool) Capacity() int {
	return len(p.slots)
}
