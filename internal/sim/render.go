package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Visual characters for rendering
const (
	SolidChar  = '█'
	HazardChar = '▓'
	BallChar   = '●'
	ShardChar  = '▪'
	ShaftChar  = '│'
)

// Rendering scale.
const (
	UnitsPerRow = 0.5 // world units per screen row
	ViewColumns = 72  // columns in a full turn, 5 degrees each
	HUDRows     = 1
)

// Render draws the unrolled tower into dst: the ball is fixed at the
// center column, one third from the top, and rings scroll past it.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	cols := ViewColumns
	if w < cols {
		cols = w
	}
	left := (w - cols) / 2
	center := left + cols/2
	ballRow := HUDRows + (h-HUDRows)/3
	degPerCol := 360.0 / float64(cols)
	world := s.world

	rowOf := func(depth float64) int {
		return ballRow + int(math.Round((world.BallDepth()-depth)/UnitsPerRow))
	}

	// Shaft edges
	for y := HUDRows; y < h; y++ {
		if left > 0 {
			dst.SetColored(left-1, y, ShaftChar, core.ColorGray)
		}
		if left+cols < w {
			dst.SetColored(left+cols, y, ShaftChar, core.ColorGray)
		}
	}

	for _, r := range world.Rings() {
		y := rowOf(r.Depth)
		if y < HUDRows || y >= h {
			continue
		}
		for c := 0; c < cols; c++ {
			angle := BallAngle + float64(c-cols/2)*degPerCol
			seg := r.SegmentAt(angle, world.TowerRotation())
			if seg == nil || !seg.Visible() || !seg.ColliderEnabled() {
				continue
			}
			if seg.Variant() == ring.Hazard {
				dst.SetColored(left+c, y, HazardChar, core.ColorHazard)
			} else {
				dst.SetColored(left+c, y, SolidChar, core.ColorSolid)
			}
		}
	}

	for _, sh := range world.Shards() {
		dx, dy := sh.Offset()
		y := rowOf(sh.Depth) - int(math.Round(dy))
		mid := float64(sh.Segments.Start+sh.Segments.End) / 2 * (360.0 / float64(s.opts.Config.Generation.Segments))
		angle := core.NormalizeDegrees(mid + sh.Rotation + world.TowerRotation() - BallAngle)
		if angle > 180 {
			angle -= 360
		}
		x := center + int(math.Round(angle/degPerCol+dx))
		if x >= left && x < left+cols && y >= HUDRows && y < h {
			dst.SetColored(x, y, ShardChar, core.ColorShard)
		}
	}

	dst.SetColored(center, ballRow, BallChar, core.ColorBall)

	st := s.State()
	hud := fmt.Sprintf(" Score: %d  Passes: %d  Smashes: %d  Streak: %d ", st.Score, st.Passes, st.Smashes, s.Streak())
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	switch {
	case s.err != nil:
		drawCenteredMessage(dst, "ERROR", s.err.Error())
	case st.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	case st.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
