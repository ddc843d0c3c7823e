package chase

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Visual characters for rendering
const (
	MountainChar = '▓'
	PeakChar     = '▲'
	GroundChar   = '═'
	SnowChar     = '░'
	CaneChar     = '█'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	groundRow := g.rowOf(g.ctrl.Viewport().GroundY)

	g.drawMountains(dst, groundRow)

	// Ground band
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorFrost)
	dst.FillRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, SnowChar, core.ColorSnow)

	for _, o := range g.ctrl.Pool().Obstacles() {
		if o.Active {
			g.drawCane(dst, o, groundRow)
		}
	}

	g.drawCat(dst)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.ctrl.Score()), core.ColorYellow)
	if g.ctrl.Difficulty().IsEnabled() && g.ctrl.Phase() == PhaseRunning {
		speedText := fmt.Sprintf(" Spd: %.0f ", g.ctrl.Speed())
		if g.ctrl.SpeedSaturated() {
			speedText = fmt.Sprintf(" Spd: %.0f MAX ", g.ctrl.Speed())
		}
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(speedText)-2, 0, speedText, core.ColorGray)
	}

	switch g.ctrl.Phase() {
	case PhaseMenu:
		g.drawCenteredMessage(dst, "Reindeer Chase", "Help Noodles catch the reindeer!", "Space to jump")
	case PhaseEnded:
		if g.ctrl.ResultsReady() {
			g.drawCenteredMessage(dst, "Ouch!", fmt.Sprintf("Score: %d", g.ctrl.Score()), "Space or R to try again")
		}
	}
}

func (g *Game) colOf(worldX float64) int {
	return int(math.Floor(worldX / g.cellW))
}

func (g *Game) rowOf(worldY float64) int {
	return int(math.Floor(worldY / g.cellH))
}

// drawMountains samples the skyline at each column centre.
func (g *Game) drawMountains(dst *core.Screen, groundRow int) {
	field := g.ctrl.Mountains()
	for col := 0; col < dst.Width(); col++ {
		y, ok := field.SkylineAt((float64(col) + 0.5) * g.cellW)
		if !ok {
			continue
		}
		top := g.rowOf(y)
		if top >= groundRow {
			continue
		}
		dst.SetColored(col, top, PeakChar, core.ColorSnow)
		for row := top + 1; row < groundRow; row++ {
			dst.SetColored(col, row, MountainChar, core.ColorNightBlue)
		}
	}
}

// drawCane renders an obstacle as a red and white striped candy cane.
func (g *Game) drawCane(dst *core.Screen, o Obstacle, groundRow int) {
	r := o.Rect(g.ctrl.Viewport().GroundY)
	left := g.colOf(r.X)
	right := int(math.Ceil(r.Right()/g.cellW)) - 1
	if right < left {
		right = left
	}
	top := g.rowOf(r.Y)
	if top >= groundRow {
		top = groundRow - 1
	}

	for row := top; row < groundRow; row++ {
		color := core.ColorRed
		if (groundRow-row)%2 == 0 {
			color = core.ColorBrightWhite
		}
		for col := left; col <= right; col++ {
			dst.SetColored(col, row, CaneChar, color)
		}
	}
	// Hook
	dst.SetColored(right+1, top, '╮', core.ColorRed)
}

// drawCat renders Noodles (3x2) with feet on the player's position.
//
//	^.^
//	/ \
func (g *Game) drawCat(dst *core.Screen) {
	p := g.ctrl.Player()
	x := g.colOf(p.X) - 1
	feet := g.rowOf(p.Y) - 1

	dst.DrawTextColored(x, feet-1, "^.^", core.ColorYellow)

	legs := "/ \\"
	switch {
	case !p.Grounded():
		legs = "<_>"
	case g.ctrl.Phase() == PhaseRunning && (g.tickCount/6)%2 == 1:
		legs = "| |"
	}
	dst.DrawTextColored(x, feet, legs, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, boxY+1+i*2, l, color)
	}
}
