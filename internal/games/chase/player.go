package chase

import (
	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Player is the running cat. Y is the position of its feet.
type Player struct {
	cfg      config.PlayerConfig
	X        float64
	Y        float64
	VelY     float64
	grounded bool
}

// NewPlayer places the player on the ground.
func NewPlayer(cfg config.PlayerConfig, groundY float64) *Player {
	return &Player{cfg: cfg, X: cfg.X, Y: groundY, grounded: true}
}

// Grounded reports whether the player is standing on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Jump starts a jump. Ignored in the air.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.VelY = p.cfg.JumpVelocity
	p.grounded = false
	return true
}

// Update integrates gravity over dt seconds and lands on groundY.
func (p *Player) Update(dt, groundY float64) {
	if p.grounded {
		p.Y = groundY
		return
	}
	p.VelY += p.cfg.Gravity * dt
	p.Y += p.VelY * dt
	if p.Y >= groundY {
		p.Y = groundY
		p.VelY = 0
		p.grounded = true
	}
}

// SetGround keeps the player on or above a moved ground line.
func (p *Player) SetGround(groundY float64) {
	if p.grounded || p.Y > groundY {
		p.Y = groundY
		p.VelY = 0
		p.grounded = true
	}
}

// Bounds returns the hitbox.
func (p *Player) Bounds() core.Rect {
	size := p.cfg.Size
	return core.RectFromCenter(p.X, p.Y-size/2, size, size)
}
