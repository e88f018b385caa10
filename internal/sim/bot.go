package sim

import (
	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/randutil"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Bot is an auto-pilot that turns the tower so a gap of the next ring lies
// under the ball. With probability 1-Accuracy it commits to a random angle
// instead, once per ring.
type Bot struct {
	accuracy float64
	step     float64
	rng      randutil.Source

	target obstacle.Handle
	aim    float64
	hasAim bool
}

// NewBot creates a bot turning at most step degrees per tick.
func NewBot(accuracy, step float64, rng randutil.Source) *Bot {
	if rng == nil {
		rng = randutil.Default()
	}
	return &Bot{accuracy: accuracy, step: step, rng: rng}
}

// Steer returns the tower rotation to apply this tick, capped by step.
func (b *Bot) Steer(w *World) float64 {
	next, ok := nextRing(w)
	if !ok {
		return 0
	}
	if !b.hasAim || b.target != next.Handle {
		b.target = next.Handle
		b.hasAim = true
		if b.rng.Float(0, 1) < b.accuracy {
			b.aim = gapCenter(next)
		} else {
			b.aim = b.rng.Float(0, 360)
		}
	}

	// Tower rotation that puts the aim angle under the ball.
	want := core.NormalizeDegrees(BallAngle - next.Rotation - b.aim)
	diff := core.NormalizeDegrees(want - w.TowerRotation())
	if diff > 180 {
		diff -= 360
	}
	return core.ClampF(diff, -b.step, b.step)
}

// nextRing returns the shallowest intact ring at or below the ball.
func nextRing(w *World) (RingView, bool) {
	for _, r := range w.Rings() {
		if r.Depth <= w.BallDepth() && r.Solid() {
			return r, true
		}
	}
	return RingView{}, false
}

// gapCenter returns the local angle at the middle of the widest gap run.
func gapCenter(r RingView) float64 {
	n := len(r.Segments)
	step := 360.0 / float64(n)
	bestStart, bestLen := -1, 0
	for i := 0; i < n; {
		if r.Segments[i].Variant() != ring.Gap {
			i++
			continue
		}
		j := i
		for j < n && r.Segments[j].Variant() == ring.Gap {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestStart < 0 {
		return 0
	}
	return (float64(bestStart) + float64(bestLen)/2) * step
}
