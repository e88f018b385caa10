// Package generation drives endless obstacle generation: a fixed runway of
// easy rings first, then one weighted-random ring per pass.
package generation

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/randutil"
	"github.com/vovakirdan/precision-drop/internal/ring"
	"github.com/vovakirdan/precision-drop/internal/selector"
)

// GapConfig is one generation recipe: how many gaps and how wide.
type GapConfig struct {
	TotalGaps int
	GapSpan   core.IntRange
}

// Settings tunes the generation policy.
type Settings struct {
	Segments           int
	FirstBatchCount    int
	FirstBatchRotation core.FloatRange
	AlignChance        float64 // percent chance of keeping rotation continuity
	AlignDelta         core.FloatRange
	FreshRotation      core.FloatRange
	HazardRange        core.AngularRange
}

// DefaultSettings returns the stock tuning for a 36 segment ring.
func DefaultSettings() Settings {
	return Settings{
		Segments:           36,
		FirstBatchCount:    10,
		FirstBatchRotation: core.FloatRange{Min: -50, Max: 50},
		AlignChance:        25,
		AlignDelta:         core.FloatRange{Min: -10, Max: 10},
		FreshRotation:      core.FloatRange{Min: 20, Max: 340},
		HazardRange:        core.NewRange(25, 30),
	}
}

// State is the generation bookkeeping owned by the controller.
type State struct {
	RotationDegrees float64
	TotalPasses     int
}

// Builder builds a single obstacle from a resolved configuration.
type Builder interface {
	Build(cfg obstacle.Config) (*obstacle.Obstacle, error)
}

// Controller owns GenerationState and feeds the obstacle builder.
type Controller struct {
	settings Settings
	table    *selector.Table[GapConfig]
	builder  Builder
	rng      randutil.Source
	logger   *log.Logger

	state   State
	started bool
}

// New creates a controller. The table is validated by Start.
func New(settings Settings, table *selector.Table[GapConfig], builder Builder, rng randutil.Source, logger *log.Logger) (*Controller, error) {
	if table == nil || builder == nil {
		return nil, &core.SequencingError{Component: "generation", Op: "New", Reason: "table and builder are required"}
	}
	if settings.FirstBatchCount < 0 {
		return nil, &core.ConfigurationError{
			Component: "generation", Field: "first_batch_count",
			Reason: "must not be negative", Expected: ">= 0", Actual: fmt.Sprint(settings.FirstBatchCount),
		}
	}
	if settings.AlignChance < 0 || settings.AlignChance > 100 {
		return nil, &core.ConfigurationError{
			Component: "generation", Field: "align_chance",
			Reason: "out of range", Expected: "[0,100]", Actual: fmt.Sprint(settings.AlignChance),
		}
	}
	if rng == nil {
		rng = randutil.Default()
	}
	return &Controller{
		settings: settings,
		table:    table,
		builder:  builder,
		rng:      rng,
		logger:   logging.Component(logger, "generation"),
	}, nil
}

// State returns a copy of the generation state.
func (c *Controller) State() State { return c.state }

// Start validates the weighted table and every recipe in it, then builds
// the first batch using the table's first recipe. It fails if called twice.
// Nothing is built when any recipe is invalid.
func (c *Controller) Start() error {
	if c.started {
		return &core.SequencingError{Component: "generation", Op: "Start", Reason: "already started"}
	}
	if err := c.table.Validate(); err != nil {
		return err
	}
	if err := c.checkRecipes(); err != nil {
		return err
	}
	c.started = true

	first := c.table.At(0)
	for i := 0; i < c.settings.FirstBatchCount; i++ {
		rot := c.rng.Float(c.settings.FirstBatchRotation.Min, c.settings.FirstBatchRotation.Max)
		if err := c.build(first, rot); err != nil {
			return fmt.Errorf("generation: first batch %d: %w", i, err)
		}
		c.state.RotationDegrees = rot
	}
	c.logger.Info("first batch built", "count", c.settings.FirstBatchCount, "gaps", first.TotalGaps)
	return nil
}

// OnPlayerPassed advances the rotation policy and builds the next ring.
func (c *Controller) OnPlayerPassed() error {
	if !c.started {
		return &core.SequencingError{Component: "generation", Op: "OnPlayerPassed", Reason: "not started"}
	}

	aligned := c.rng.Float(0, 100) < c.settings.AlignChance
	if aligned {
		c.state.RotationDegrees += c.rng.Float(c.settings.AlignDelta.Min, c.settings.AlignDelta.Max)
	} else {
		c.state.RotationDegrees = c.rng.Float(c.settings.FreshRotation.Min, c.settings.FreshRotation.Max)
	}
	c.state.RotationDegrees = core.NormalizeDegrees(c.state.RotationDegrees)

	cfg, err := c.table.Pick(c.rng)
	if err != nil {
		return err
	}
	if err := c.build(cfg, c.state.RotationDegrees); err != nil {
		return err
	}
	c.state.TotalPasses++
	c.logger.Debug("next ring", "aligned", aligned, "rotation", c.state.RotationDegrees,
		"gaps", cfg.TotalGaps, "passes", c.state.TotalPasses)
	return nil
}

// checkRecipes rejects recipes that ReplicateGaps would refuse mid-run.
func (c *Controller) checkRecipes() error {
	n := c.settings.Segments
	for i := 0; i < c.table.Len(); i++ {
		r := c.table.At(i)
		if r.TotalGaps < 1 || r.TotalGaps > n {
			return &core.ConfigurationError{
				Component: "generation", Field: fmt.Sprintf("gap_configs[%d].total_gaps", i),
				Reason: "out of range", Expected: fmt.Sprintf("1..%d", n), Actual: fmt.Sprint(r.TotalGaps),
			}
		}
		lane := ring.LaneWidth(n, r.TotalGaps)
		if r.GapSpan.Min < 0 || r.GapSpan.Min > r.GapSpan.Max || r.GapSpan.Max > lane {
			return &core.ConfigurationError{
				Component: "generation", Field: fmt.Sprintf("gap_configs[%d].gap_span", i),
				Reason: "must fit inside one lane", Expected: fmt.Sprintf("0 <= min <= max <= %d", lane),
				Actual: fmt.Sprintf("%d..%d", r.GapSpan.Min, r.GapSpan.Max),
			}
		}
	}
	return nil
}

func (c *Controller) build(cfg GapConfig, rotation float64) error {
	base := ring.BaseRange(cfg.GapSpan, c.rng)
	gaps, err := ring.ReplicateGaps(c.settings.Segments, cfg.TotalGaps, base)
	if err != nil {
		return err
	}
	_, err = c.builder.Build(obstacle.Config{
		RotationDegrees: rotation,
		GapRanges:       gaps,
		HazardRange:     c.settings.HazardRange,
	})
	return err
}
