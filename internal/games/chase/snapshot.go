package chase

import "github.com/vovakirdan/reindeer-chase/internal/core"

// Snapshot is a copy of everything a pixel renderer needs, in world units.
type Snapshot struct {
	Phase        Phase
	Score        int
	ResultsReady bool
	Speed        float64
	Viewport     Viewport
	Player       core.Rect
	Grounded     bool
	Obstacles    []core.Rect
	Mountains    [][]core.Point // Closed world-space silhouettes, feet on the ground
}

// Snapshot copies the current state. The result shares no memory with the
// simulation.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{}
	}
	c := g.ctrl
	vp := c.Viewport()

	s := Snapshot{
		Phase:        c.Phase(),
		Score:        c.Score(),
		ResultsReady: c.ResultsReady(),
		Speed:        c.Speed(),
		Viewport:     vp,
		Player:       c.Player().Bounds(),
		Grounded:     c.Player().Grounded(),
	}

	for _, o := range c.Pool().Obstacles() {
		if o.Active {
			s.Obstacles = append(s.Obstacles, o.Rect(vp.GroundY))
		}
	}

	for _, b := range c.Mountains().Bands() {
		if b.Right() < 0 || b.X > vp.Width {
			continue
		}
		poly := make([]core.Point, 0, len(b.Shape)+2)
		poly = append(poly, core.Point{X: b.X, Y: vp.GroundY})
		for _, p := range b.Shape {
			poly = append(poly, core.Point{X: b.X + p.X, Y: p.Y})
		}
		poly = append(poly, core.Point{X: b.Right(), Y: vp.GroundY})
		s.Mountains = append(s.Mountains, poly)
	}
	return s
}
