package obstacle

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/logging"
	"github.com/vovakirdan/precision-drop/internal/randutil"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Settings fixes the geometry shared by every obstacle.
type Settings struct {
	Segments       int           // pieces per ring
	Parts          int           // fragments a broken ring splits into
	Spacing        float64       // vertical distance between rings
	BounceCooldown time.Duration // collision debounce window
	BreakForce     float64       // impulse applied to fragments
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if s.Segments < 1 {
		return &core.ConfigurationError{
			Component: "obstacle", Field: "segments",
			Reason: "must be positive", Expected: ">= 1", Actual: strconv.Itoa(s.Segments),
		}
	}
	if s.Parts < 1 || s.Segments%s.Parts != 0 {
		return &core.ConfigurationError{
			Component: "obstacle", Field: "parts",
			Reason:   fmt.Sprintf("must evenly divide %d segments", s.Segments),
			Expected: "divisor of " + strconv.Itoa(s.Segments), Actual: strconv.Itoa(s.Parts),
		}
	}
	if s.Spacing <= 0 {
		return &core.ConfigurationError{
			Component: "obstacle", Field: "spacing",
			Reason: "must be positive", Expected: "> 0", Actual: fmt.Sprint(s.Spacing),
		}
	}
	if s.BounceCooldown < 0 {
		return &core.ConfigurationError{
			Component: "obstacle", Field: "bounce_cooldown",
			Reason: "must not be negative", Expected: ">= 0", Actual: s.BounceCooldown.String(),
		}
	}
	return nil
}

// Config describes a single ring to build.
type Config struct {
	RotationDegrees float64
	GapRanges       []core.AngularRange
	HazardRange     core.AngularRange
}

// Placement is what the spawner needs to instantiate a ring in space.
type Placement struct {
	Handle   Handle
	Depth    float64
	Rotation float64
	Segments []*Segment
}

// Fragment is one contiguous chunk of a broken ring.
type Fragment struct {
	Index    int
	Segments core.AngularRange
	Heading  float64 // degrees
	Force    float64
}

// Spawner instantiates rings in the world and reacts to their breakage.
type Spawner interface {
	Spawn(p Placement) error
	Shatter(h Handle, fragments []Fragment)
	Despawn(h Handle)
}

// Builder turns ring configurations into tracked obstacles.
type Builder struct {
	settings Settings
	spawner  Spawner
	clock    core.Clock
	rng      randutil.Source
	logger   *log.Logger
	arena    *Arena

	nextHandle Handle
	built      int

	// Built fires after an obstacle is spawned and registered.
	Built event.Signal[*Obstacle]
}

// NewBuilder validates settings and creates a builder with an empty arena.
func NewBuilder(settings Settings, spawner Spawner, clock core.Clock, rng randutil.Source, logger *log.Logger) (*Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if spawner == nil {
		return nil, &core.SequencingError{Component: "obstacle", Op: "NewBuilder", Reason: "spawner is required"}
	}
	if clock == nil {
		return nil, &core.SequencingError{Component: "obstacle", Op: "NewBuilder", Reason: "clock is required"}
	}
	if rng == nil {
		rng = randutil.Default()
	}
	return &Builder{
		settings: settings,
		spawner:  spawner,
		clock:    clock,
		rng:      rng,
		logger:   logging.Component(logger, "obstacle"),
		arena:    newArena(spawner),
	}, nil
}

// Arena returns the arena that tracks every built obstacle.
func (b *Builder) Arena() *Arena { return b.arena }

// Settings returns the geometry settings.
func (b *Builder) Settings() Settings { return b.settings }

// Count returns how many obstacles have been built so far.
func (b *Builder) Count() int { return b.built }

// Build creates the next obstacle below the previous one.
func (b *Builder) Build(cfg Config) (*Obstacle, error) {
	n := b.settings.Segments
	for i, g := range cfg.GapRanges {
		if !g.Within(n) {
			return nil, &core.ConfigurationError{
				Component: "obstacle", Field: fmt.Sprintf("gap_ranges[%d]", i),
				Reason: "range outside ring", Expected: fmt.Sprintf("within [0,%d)", n), Actual: g.String(),
			}
		}
	}
	if !cfg.HazardRange.Empty() && !cfg.HazardRange.Within(n) {
		return nil, &core.ConfigurationError{
			Component: "obstacle", Field: "hazard_range",
			Reason: "range outside ring", Expected: fmt.Sprintf("within [0,%d)", n), Actual: cfg.HazardRange.String(),
		}
	}

	variants := ring.Classify(n, cfg.GapRanges, cfg.HazardRange)
	step := 360.0 / float64(n)
	segments := make([]*Segment, n)
	for i, v := range variants {
		segments[i] = newSegment(i, v, core.NormalizeDegrees(float64(i)*step+cfg.RotationDegrees))
	}

	b.nextHandle++
	h := b.nextHandle
	depth := -b.settings.Spacing * float64(b.built)
	o := newObstacle(h, depth, cfg.RotationDegrees, segments, b.clock, b.settings.BounceCooldown, b.shatter)

	err := b.spawner.Spawn(Placement{Handle: h, Depth: depth, Rotation: cfg.RotationDegrees, Segments: segments})
	if err != nil {
		o.detach()
		return nil, fmt.Errorf("obstacle: spawn %d: %w", h, err)
	}
	b.built++
	b.arena.add(o)

	b.logger.Debug("built", "handle", h, "depth", depth, "rotation", cfg.RotationDegrees,
		"gaps", ring.Count(variants, ring.Gap), "hazards", ring.Count(variants, ring.Hazard))
	b.Built.Emit(o)
	return o, nil
}

// Fragments splits an obstacle into its break-apart parts, each thrown in a
// random direction inside its own angular slice.
func (b *Builder) Fragments(o *Obstacle) []Fragment {
	parts := b.settings.Parts
	width := b.settings.Segments / parts
	slice := 360.0 / float64(parts)
	out := make([]Fragment, parts)
	for i := range out {
		out[i] = Fragment{
			Index:    i,
			Segments: core.NewRange(i*width, (i+1)*width),
			Heading:  core.NormalizeDegrees(o.rotation + b.rng.Float(float64(i)*slice, float64(i+1)*slice)),
			Force:    b.settings.BreakForce,
		}
	}
	return out
}

func (b *Builder) shatter(o *Obstacle) {
	b.spawner.Shatter(o.handle, b.Fragments(o))
}
