// Package app is the composition root: it assembles the obstacle pipeline
// from configuration and collaborators, then starts it in one step.
package app

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/config"
	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/gameflow"
	"github.com/vovakirdan/precision-drop/internal/generation"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/randutil"
	"github.com/vovakirdan/precision-drop/internal/registry"
	"github.com/vovakirdan/precision-drop/internal/selector"

	// Register streak rules.
	_ "github.com/vovakirdan/precision-drop/internal/rules"
)

// Builder collects the collaborators a Game needs.
type Builder struct {
	cfg     *config.Config
	spawner obstacle.Spawner
	clock   core.Clock
	rng     randutil.Source
	logger  *log.Logger
	strict  *bool
}

// NewBuilder starts an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithConfig sets the run configuration.
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.cfg = &cfg
	return b
}

// WithSpawner sets the spatial instantiation collaborator.
func (b *Builder) WithSpawner(s obstacle.Spawner) *Builder {
	b.spawner = s
	return b
}

// WithClock sets the simulation clock used for debouncing.
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithRandom sets the random source. Defaults to randutil.Default.
func (b *Builder) WithRandom(r randutil.Source) *Builder {
	b.rng = r
	return b
}

// WithLogger sets the root logger. Defaults to a discarding logger.
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	b.logger = l
	return b
}

// WithStrict overrides flow.strict from the configuration.
func (b *Builder) WithStrict(strict bool) *Builder {
	b.strict = &strict
	return b
}

// Game is a fully wired obstacle pipeline.
type Game struct {
	Config     config.Config
	Builder    *obstacle.Builder
	Arena      *obstacle.Arena
	Bus        *obstacle.Bus
	Generation *generation.Controller
	Flow       *gameflow.Coordinator
	Tally      *gameflow.Tally

	logger  *log.Logger
	subs    event.Group
	started bool
	err     error
}

// Build validates the collaborators and configuration and assembles a Game.
// Nothing is generated until Start.
func (b *Builder) Build() (*Game, error) {
	switch {
	case b.cfg == nil:
		return nil, missing("config")
	case b.spawner == nil:
		return nil, missing("spawner")
	case b.clock == nil:
		return nil, missing("clock")
	}
	cfg := *b.cfg
	if b.strict != nil {
		cfg.Flow.Strict = *b.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := b.rng
	if rng == nil {
		rng = randutil.Default()
	}
	logger := b.logger
	if logger == nil {
		logger = logging.Discard()
	}

	ob, err := obstacle.NewBuilder(obstacle.Settings{
		Segments:       cfg.Generation.Segments,
		Parts:          cfg.Platform.Parts,
		Spacing:        cfg.Platform.Spacing,
		BounceCooldown: cfg.Platform.BounceCooldown(),
		BreakForce:     cfg.Platform.BreakForce,
	}, b.spawner, b.clock, rng, logger)
	if err != nil {
		return nil, err
	}

	gen, err := generation.New(GenerationSettings(cfg), GapTable(cfg), ob, rng, logger)
	if err != nil {
		return nil, err
	}

	ruleID := strings.ToLower(cfg.Flow.Rule)
	if !registry.Exists(ruleID) {
		return nil, &core.ConfigurationError{
			Component: "app", Field: "flow.rule", Reason: "unknown rule",
			Expected: ruleNames(), Actual: cfg.Flow.Rule,
		}
	}
	rule, err := registry.Create(ruleID, registry.Options{ComboThreshold: cfg.Flow.ComboThreshold})
	if err != nil {
		return nil, err
	}

	bus := obstacle.NewBus(ob)
	flow, err := gameflow.New(bus, ob.Arena(), rule, gameflow.Options{Strict: cfg.Flow.Strict}, logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		Config:     cfg,
		Builder:    ob,
		Arena:      ob.Arena(),
		Bus:        bus,
		Generation: gen,
		Flow:       flow,
		Tally:      gameflow.NewTally(flow),
		logger:     logging.Component(logger, "app"),
	}, nil
}

// GenerationSettings maps configuration onto generation settings.
func GenerationSettings(cfg config.Config) generation.Settings {
	g := cfg.Generation
	return generation.Settings{
		Segments:           g.Segments,
		FirstBatchCount:    g.FirstBatchCount,
		FirstBatchRotation: g.FirstBatchRotation,
		AlignChance:        g.AlignChance,
		AlignDelta:         g.AlignDelta,
		FreshRotation:      g.FreshRotation,
		HazardRange:        g.HazardRange,
	}
}

// GapTable builds the weighted recipe table from configuration.
func GapTable(cfg config.Config) *selector.Table[generation.GapConfig] {
	entries := make([]selector.Entry[generation.GapConfig], len(cfg.Generation.GapConfigs))
	for i, gc := range cfg.Generation.GapConfigs {
		entries[i] = selector.Entry[generation.GapConfig]{
			Weight:  gc.Chance,
			Payload: generation.GapConfig{TotalGaps: gc.TotalGaps, GapSpan: gc.GapSpan},
		}
	}
	return selector.New(entries)
}

// Start wires generation to pass events and builds the first batch.
// It fails if called twice. When the first batch cannot be built the game
// is stopped and cannot be restarted.
func (g *Game) Start() error {
	if g.started {
		return &core.SequencingError{Component: "app", Op: "Start", Reason: "already started"}
	}
	g.started = true
	if err := g.Flow.Start(); err != nil {
		g.Stop()
		return err
	}
	g.subs.Add(g.Flow.PlayerPassedObstacle.Subscribe(func(obstacle.Handle) {
		if err := g.Generation.OnPlayerPassed(); err != nil && g.err == nil {
			g.err = err
			g.logger.Error("generation failed", "err", err)
		}
	}))
	if err := g.Generation.Start(); err != nil {
		g.Stop()
		return err
	}
	g.logger.Info("game started", "rule", g.Flow.Rule().ID(), "obstacles", g.Arena.Len())
	return nil
}

// Err returns the first error raised while reacting to events.
func (g *Game) Err() error { return g.err }

// Evict drops passed obstacles far above the player.
func (g *Game) Evict(playerDepth float64) int {
	return g.Arena.Evict(playerDepth, g.Config.Platform.EvictDistance)
}

// Stop detaches every listener.
func (g *Game) Stop() {
	g.subs.Cancel()
	g.Flow.Stop()
	g.Tally.Close()
	g.Bus.Close()
}

func missing(what string) error {
	return &core.SequencingError{Component: "app", Op: "Build", Reason: what + " is required"}
}

func ruleNames() string {
	var ids []string
	for _, r := range registry.List() {
		ids = append(ids, r.ID)
	}
	return strings.Join(ids, "|")
}
