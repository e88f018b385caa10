package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/app"
	"github.com/vovakirdan/precision-drop/internal/config"
	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/randutil"
)

// Options configures a session.
type Options struct {
	Config    config.Config
	Seed      int64 // 0 seeds from the clock
	Strict    bool
	AutoPilot bool
	Logger    *log.Logger
}

// Session runs one game: the obstacle pipeline, the physics world and
// optionally the bot, advanced by fixed ticks.
type Session struct {
	opts   Options
	logger *log.Logger

	game  *app.Game
	world *World
	clock *core.StepClock
	bot   *Bot
	subs  event.Group

	dt     time.Duration
	ticks  int
	paused bool
	err    error
}

// NewSession builds and starts a session.
func NewSession(opts Options) (*Session, error) {
	if opts.Config.Sim.TickRate < 1 {
		opts.Config.Sim.TickRate = 60
	}
	s := &Session{
		opts:   opts,
		logger: logging.Component(opts.Logger, "sim"),
		dt:     time.Second / time.Duration(opts.Config.Sim.TickRate),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current run and starts a fresh one.
func (s *Session) Reset() error {
	if s.game != nil {
		s.subs.Cancel()
		s.game.Stop()
	}
	cfg := s.opts.Config
	rng := randutil.New(s.opts.Seed)
	clock := core.NewStepClock()
	world := NewWorld(Physics{
		Gravity:      cfg.Player.Gravity,
		JumpStrength: cfg.Player.JumpStrength,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})

	game, err := app.NewBuilder().
		WithConfig(cfg).
		WithSpawner(world).
		WithClock(clock).
		WithRandom(rng).
		WithLogger(s.opts.Logger).
		WithStrict(s.opts.Strict || cfg.Flow.Strict).
		Build()
	if err != nil {
		return err
	}

	s.game, s.world, s.clock = game, world, clock
	s.ticks, s.paused, s.err = 0, false, nil
	s.bot = nil
	if s.opts.AutoPilot {
		s.bot = NewBot(cfg.Sim.BotAccuracy, cfg.Sim.RotateStep, rng)
	}

	s.subs.Add(game.Flow.PlayerBounced.Subscribe(func(obstacle.Handle) { world.Jump() }))
	s.subs.Add(game.Flow.PlayerHitHazard.Subscribe(func(h obstacle.Handle) {
		s.logger.Info("hazard hit", "obstacle", h, "tick", s.ticks)
	}))
	return game.Start()
}

// Step advances the run by one tick.
func (s *Session) Step(in core.InputFrame) core.RunState {
	if s.State().GameOver {
		return s.State()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return s.State()
	}
	s.ticks++
	s.clock.Advance(s.dt)

	step := s.opts.Config.Sim.RotateStep
	switch {
	case s.bot != nil:
		s.world.Rotate(s.bot.Steer(s.world))
	case in.Has(core.ActionRotateLeft):
		s.world.Rotate(-step)
	case in.Has(core.ActionRotateRight):
		s.world.Rotate(step)
	}

	s.world.Step(s.dt.Seconds())
	s.game.Evict(s.world.BallDepth())
	if err := s.game.Err(); err != nil && s.err == nil {
		s.err = err
	}
	return s.State()
}

// Run drives the session without input until game over, maxTicks or
// cancellation. A zero maxTicks runs until game over.
func (s *Session) Run(ctx context.Context, maxTicks int) (core.RunState, error) {
	in := core.NewInputFrame()
	for maxTicks == 0 || s.ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return s.State(), err
		}
		st := s.Step(in)
		if s.err != nil {
			return st, s.err
		}
		if st.GameOver {
			break
		}
	}
	return s.State(), nil
}

// State returns the run summary.
func (s *Session) State() core.RunState {
	st := s.game.Tally.State()
	st.Paused = s.paused
	if s.err != nil {
		st.GameOver = true
	}
	return st
}

// Err returns the error that ended the run, if any.
func (s *Session) Err() error { return s.err }

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() int { return s.ticks }

// Elapsed returns simulated time.
func (s *Session) Elapsed() time.Duration { return s.clock.Now() }

// Streak returns the active rule's streak.
func (s *Session) Streak() int { return s.game.Flow.Rule().Streak() }

// BestStreak returns the longest streak of the run.
func (s *Session) BestStreak() int { return s.game.Tally.BestStreak() }

// World returns the physics world.
func (s *Session) World() *World { return s.world }

// Game returns the wired obstacle pipeline.
func (s *Session) Game() *app.Game { return s.game }

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.opts.Config }
