package web

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/reindeer-chase/internal/core"
	"github.com/vovakirdan/reindeer-chase/internal/games/chase"
)

// Palette
var (
	skyColor      = color.RGBA{0x0b, 0x10, 0x2a, 0xff}
	moonColor     = color.RGBA{0xf4, 0xf1, 0xde, 0xff}
	mountainColor = color.RGBA{0x1d, 0x2b, 0x53, 0xff}
	snowColor     = color.RGBA{0xee, 0xf3, 0xfb, 0xff}
	frostColor    = color.RGBA{0xa9, 0xd6, 0xf5, 0xff}
	caneRed       = color.RGBA{0xd6, 0x28, 0x28, 0xff}
	caneWhite     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	catColor      = color.RGBA{0xf2, 0xa6, 0x3b, 0xff}
	hudColor      = color.RGBA{0xff, 0xe0, 0x66, 0xff}
	dimColor      = color.RGBA{0x00, 0x00, 0x00, 0x99}
)

const (
	caneStripe = 10.0 // Stripe height in world units
	hudScale   = 2.0
	titleScale = 4.0
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw renders the latest snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	if !h.started {
		return
	}

	s := h.game.Snapshot()
	vp := s.Viewport

	r := float32(math.Min(vp.Width, vp.Height) * 0.06)
	vector.DrawFilledCircle(screen, float32(vp.Width*0.8), float32(vp.Height*0.18), r, moonColor, true)

	for _, poly := range s.Mountains {
		h.fillPolygon(screen, poly, mountainColor)
	}

	groundY := float32(vp.GroundY)
	vector.DrawFilledRect(screen, 0, groundY, float32(vp.Width), float32(vp.Height)-groundY, snowColor, false)
	vector.StrokeLine(screen, 0, groundY, float32(vp.Width), groundY, 3, frostColor, true)

	for _, o := range s.Obstacles {
		drawCane(screen, o)
	}
	drawCat(screen, s.Player, s.Grounded)

	h.drawText(screen, fmt.Sprintf("Score: %d", s.Score), 16, 16, hudScale, hudColor)
	if h.best > 0 {
		h.drawText(screen, fmt.Sprintf("Best: %d", h.best), 16, 16+16*hudScale, hudScale, frostColor)
	}

	switch s.Phase {
	case chase.PhaseMenu:
		h.drawOverlay(screen, vp, "Reindeer Chase", "Help Noodles catch the reindeer!", "Space, click or tap to jump")
	case chase.PhaseEnded:
		if s.ResultsReady {
			h.drawOverlay(screen, vp, "Ouch!", fmt.Sprintf("Score: %d", s.Score), "Space or R to try again")
		}
	}
}

// fillPolygon fills a simple polygon with a solid color.
func (h *Host) fillPolygon(dst *ebiten.Image, pts []core.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	h.vertices, h.indices = path.AppendVerticesAndIndicesForFilling(h.vertices[:0], h.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range h.vertices {
		h.vertices[i].SrcX = 1
		h.vertices[i].SrcY = 1
		h.vertices[i].ColorR = cr
		h.vertices[i].ColorG = cg
		h.vertices[i].ColorB = cb
		h.vertices[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(h.vertices, h.indices, whiteSubImage, op)
}

// drawCane draws a red and white striped candy cane with a hook on top.
func drawCane(dst *ebiten.Image, r core.Rect) {
	x, w := float32(r.X), float32(r.W)
	for y := r.Bottom(); y > r.Y; y -= caneStripe {
		top := math.Max(y-caneStripe, r.Y)
		clr := caneRed
		if int((r.Bottom()-y)/caneStripe)%2 == 1 {
			clr = caneWhite
		}
		vector.DrawFilledRect(dst, x, float32(top), w, float32(y-top), clr, false)
	}
	vector.StrokeLine(dst, x+w/2, float32(r.Y), x+w*1.5, float32(r.Y)-w/2, w/2, caneRed, true)
}

// drawCat draws Noodles inside the player's bounds.
func drawCat(dst *ebiten.Image, r core.Rect, grounded bool) {
	x, y, w, hh := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(dst, x, y+hh*0.25, w, hh*0.75, catColor, true)

	// Ears
	vector.StrokeLine(dst, x, y+hh*0.3, x+w*0.2, y, 3, catColor, true)
	vector.StrokeLine(dst, x+w*0.2, y, x+w*0.4, y+hh*0.3, 3, catColor, true)
	vector.StrokeLine(dst, x+w*0.6, y+hh*0.3, x+w*0.8, y, 3, catColor, true)
	vector.StrokeLine(dst, x+w*0.8, y, x+w, y+hh*0.3, 3, catColor, true)

	eyeY := y + hh*0.45
	vector.DrawFilledCircle(dst, x+w*0.3, eyeY, 2, skyColor, true)
	vector.DrawFilledCircle(dst, x+w*0.7, eyeY, 2, skyColor, true)

	if !grounded {
		vector.StrokeLine(dst, x+w*0.2, y+hh, x, y+hh*1.2, 3, catColor, true)
		vector.StrokeLine(dst, x+w*0.8, y+hh, x+w, y+hh*1.2, 3, catColor, true)
	}
}

// drawOverlay dims the scene and prints a title with body lines.
func (h *Host) drawOverlay(dst *ebiten.Image, vp chase.Viewport, title string, lines ...string) {
	vector.DrawFilledRect(dst, 0, 0, float32(vp.Width), float32(vp.Height), dimColor, false)

	lineH := h.face.Metrics().HAscent + h.face.Metrics().HDescent
	y := vp.Height/2 - lineH*titleScale*1.5
	h.drawCentered(dst, vp.Width, title, y, titleScale, hudColor)
	y += lineH*titleScale + 24
	for _, l := range lines {
		h.drawCentered(dst, vp.Width, l, y, hudScale, snowColor)
		y += lineH*hudScale + 12
	}
}

func (h *Host) drawCentered(dst *ebiten.Image, width float64, s string, y, scale float64, clr color.Color) {
	w := text.Advance(s, h.face) * scale
	h.drawText(dst, s, (width-w)/2, y, scale, clr)
}

func (h *Host) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, h.face, op)
}
