// Package gameflow turns obstacle events into player-facing gameplay events
// and applies the configured streak rule.
package gameflow

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/registry"
)

// Options tunes the coordinator.
type Options struct {
	// Strict panics on events for untracked obstacles instead of logging.
	Strict bool
}

// Coordinator wires the obstacle bus into gameplay signals.
type Coordinator struct {
	bus    *obstacle.Bus
	arena  *obstacle.Arena
	rule   registry.Rule
	opts   Options
	logger *log.Logger

	subs    event.Group
	started bool

	PlayerPassedObstacle event.Signal[obstacle.Handle]
	PlayerBounced        event.Signal[obstacle.Handle]
	PlayerSmashed        event.Signal[obstacle.Handle]
	PlayerHitHazard      event.Signal[obstacle.Handle]
}

// New creates a coordinator. Call Start to attach it to the bus.
func New(bus *obstacle.Bus, arena *obstacle.Arena, rule registry.Rule, opts Options, logger *log.Logger) (*Coordinator, error) {
	if bus == nil || arena == nil || rule == nil {
		return nil, &core.SequencingError{Component: "gameflow", Op: "New", Reason: "bus, arena and rule are required"}
	}
	return &Coordinator{
		bus:    bus,
		arena:  arena,
		rule:   rule,
		opts:   opts,
		logger: logging.Component(logger, "gameflow"),
	}, nil
}

// Rule returns the active streak rule.
func (c *Coordinator) Rule() registry.Rule { return c.rule }

// Start subscribes to the bus. It fails if called twice.
func (c *Coordinator) Start() error {
	if c.started {
		return &core.SequencingError{Component: "gameflow", Op: "Start", Reason: "already started"}
	}
	c.started = true
	c.subs.Add(c.bus.Passed.Subscribe(c.onPassed))
	c.subs.Add(c.bus.Collided.Subscribe(c.onCollided))
	c.subs.Add(c.bus.HazardTouched.Subscribe(c.onHazard))
	return nil
}

// Stop detaches from the bus.
func (c *Coordinator) Stop() {
	c.subs.Cancel()
}

func (c *Coordinator) onCollided(h obstacle.Handle) {
	if !c.tracked("collided", h) {
		return
	}
	c.PlayerBounced.Emit(h)
	c.rule.OnCollision()
}

func (c *Coordinator) onHazard(h obstacle.Handle) {
	if !c.tracked("hazard", h) {
		return
	}
	c.logger.Debug("hazard touched", "obstacle", h)
	c.PlayerHitHazard.Emit(h)
}

func (c *Coordinator) onPassed(h obstacle.Handle) {
	if !c.tracked("passed", h) {
		return
	}
	out := c.rule.OnPass()
	c.PlayerPassedObstacle.Emit(h)
	if !out.Combo {
		return
	}

	next := c.arena.Current()
	if next == nil || !next.Smash() {
		c.logger.Warn("combo without an obstacle to smash", "streak", out.Streak)
		return
	}
	c.logger.Debug("combo", "streak", out.Streak, "smashed", next.Handle())
	c.PlayerSmashed.Emit(next.Handle())
	c.PlayerPassedObstacle.Emit(next.Handle())
}

func (c *Coordinator) tracked(op string, h obstacle.Handle) bool {
	if c.arena.Tracks(h) {
		return true
	}
	if c.opts.Strict {
		panic(&core.SequencingError{Component: "gameflow", Op: op, Reason: "event for untracked obstacle"})
	}
	c.logger.Error("event for untracked obstacle", "op", op, "obstacle", h)
	return false
}
