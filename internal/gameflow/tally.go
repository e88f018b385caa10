package gameflow

import (
	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
)

// Scoring constants.
const (
	PointsPerPass = 10
	SmashBonus    = 10 // a smashed obstacle scores double
)

// Tally keeps the score of a run from coordinator signals.
type Tally struct {
	state      core.RunState
	streak     int
	bestStreak int
	smashed    bool // next pass is the re-emit of a smash
	subs       event.Group
}

// NewTally attaches a tally to c.
func NewTally(c *Coordinator) *Tally {
	t := &Tally{}
	t.subs.Add(c.PlayerPassedObstacle.Subscribe(func(obstacle.Handle) {
		t.state.Passes++
		t.state.Score += PointsPerPass
		if t.smashed {
			t.smashed = false
			return
		}
		t.streak++
		if t.streak > t.bestStreak {
			t.bestStreak = t.streak
		}
	}))
	t.subs.Add(c.PlayerSmashed.Subscribe(func(obstacle.Handle) {
		t.state.Smashes++
		t.state.Score += SmashBonus
		t.smashed = true
	}))
	t.subs.Add(c.PlayerBounced.Subscribe(func(obstacle.Handle) {
		t.state.Bounces++
		t.streak = 0
	}))
	t.subs.Add(c.PlayerHitHazard.Subscribe(func(obstacle.Handle) {
		t.state.GameOver = true
	}))
	return t
}

// State returns the current run summary.
func (t *Tally) State() core.RunState { return t.state }

// BestStreak returns the longest run of gap passes without a bounce.
// Smashed obstacles count as passes but not towards the streak.
func (t *Tally) BestStreak() int { return t.bestStreak }

// Close detaches the tally.
func (t *Tally) Close() { t.subs.Cancel() }
