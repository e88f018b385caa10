// Package config provides YAML-based configuration loading for the
// obstacle pipeline, the physics sim and the front-ends.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Config is the full configuration of a run.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Platform   PlatformConfig   `yaml:"platform"`
	Flow       FlowConfig       `yaml:"flow"`
	Player     PlayerConfig     `yaml:"player"`
	Sim        SimConfig        `yaml:"sim"`
}

// GenerationConfig tunes obstacle generation.
type GenerationConfig struct {
	Segments           int               `yaml:"segments"`
	FirstBatchCount    int               `yaml:"first_batch_count"`
	FirstBatchRotation core.FloatRange   `yaml:"first_batch_rotation"`
	AlignChance        float64           `yaml:"align_chance"` // percent
	AlignDelta         core.FloatRange   `yaml:"align_delta"`
	FreshRotation      core.FloatRange   `yaml:"fresh_rotation"`
	HazardRange        core.AngularRange `yaml:"hazard_range"`
	GapConfigs         []GapConfig       `yaml:"gap_configs"`
}

// GapConfig is a weighted generation recipe.
type GapConfig struct {
	TotalGaps int           `yaml:"total_gaps"`
	GapSpan   core.IntRange `yaml:"gap_span"`
	Chance    float64       `yaml:"chance"` // percent, the table sums to 100
}

// PlatformConfig defines ring geometry and runtime behavior.
type PlatformConfig struct {
	Spacing          float64 `yaml:"spacing"`
	Parts            int     `yaml:"parts"`
	BounceCooldownMS int     `yaml:"bounce_cooldown_ms"`
	EvictDistance    float64 `yaml:"evict_distance"`
	BreakForce       float64 `yaml:"break_force"`
}

// BounceCooldown returns the collision debounce window.
func (p PlatformConfig) BounceCooldown() time.Duration {
	return time.Duration(p.BounceCooldownMS) * time.Millisecond
}

// FlowConfig selects the streak rule.
type FlowConfig struct {
	Rule           string `yaml:"rule"` // "plain" or "combo"
	ComboThreshold int    `yaml:"combo_threshold"`
	Strict         bool   `yaml:"strict"`
}

// PlayerConfig defines ball physics.
type PlayerConfig struct {
	JumpStrength float64 `yaml:"jump_strength"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// SimConfig tunes the headless simulation and the auto-pilot.
type SimConfig struct {
	TickRate    int     `yaml:"tick_rate"`
	BotAccuracy float64 `yaml:"bot_accuracy"` // 0..1
	RotateStep  float64 `yaml:"rotate_step"`  // degrees per tick of input
}

// Validate checks the configuration before a run starts. Every recipe must
// fit its lane. The weighted table sum is checked by the selector when
// generation starts.
func (c Config) Validate() error {
	g := c.Generation
	if g.Segments < 1 {
		return invalid("generation.segments", "must be positive", ">= 1", g.Segments)
	}
	if len(g.GapConfigs) == 0 {
		return invalid("generation.gap_configs", "at least one recipe is required", ">= 1", 0)
	}
	for i, gc := range g.GapConfigs {
		field := fmt.Sprintf("generation.gap_configs[%d]", i)
		if gc.TotalGaps < 1 || gc.TotalGaps > g.Segments {
			return invalid(field+".total_gaps", "out of range", fmt.Sprintf("1..%d", g.Segments), gc.TotalGaps)
		}
		if gc.GapSpan.Min < 0 || gc.GapSpan.Min > gc.GapSpan.Max {
			return invalid(field+".gap_span", "min must be in [0, max]", "0 <= min <= max",
				fmt.Sprintf("%d..%d", gc.GapSpan.Min, gc.GapSpan.Max))
		}
		if lane := ring.LaneWidth(g.Segments, gc.TotalGaps); gc.GapSpan.Max > lane {
			return invalid(field+".gap_span", "wider than one lane", fmt.Sprintf("max <= %d", lane),
				fmt.Sprintf("%d..%d", gc.GapSpan.Min, gc.GapSpan.Max))
		}
		if gc.Chance < 0 || gc.Chance > 100 {
			return invalid(field+".chance", "out of range", "[0,100]", gc.Chance)
		}
	}
	if !g.HazardRange.Within(g.Segments) {
		return invalid("generation.hazard_range", "outside ring", fmt.Sprintf("within [0,%d)", g.Segments), g.HazardRange)
	}
	ranges := []struct {
		name string
		r    core.FloatRange
	}{
		{"generation.first_batch_rotation", g.FirstBatchRotation},
		{"generation.align_delta", g.AlignDelta},
		{"generation.fresh_rotation", g.FreshRotation},
	}
	for _, fr := range ranges {
		if fr.r.Min > fr.r.Max {
			return invalid(fr.name, "min greater than max", "min <= max", fmt.Sprintf("%v..%v", fr.r.Min, fr.r.Max))
		}
	}
	if g.AlignChance < 0 || g.AlignChance > 100 {
		return invalid("generation.align_chance", "out of range", "[0,100]", g.AlignChance)
	}
	if c.Platform.Parts < 1 || g.Segments%c.Platform.Parts != 0 {
		return invalid("platform.parts", fmt.Sprintf("must evenly divide %d segments", g.Segments),
			"divisor of segments", c.Platform.Parts)
	}
	if c.Platform.Spacing <= 0 {
		return invalid("platform.spacing", "must be positive", "> 0", c.Platform.Spacing)
	}
	if c.Platform.BounceCooldownMS < 0 {
		return invalid("platform.bounce_cooldown_ms", "must not be negative", ">= 0", c.Platform.BounceCooldownMS)
	}
	if c.Sim.TickRate < 1 {
		return invalid("sim.tick_rate", "must be positive", ">= 1", c.Sim.TickRate)
	}
	if c.Sim.BotAccuracy < 0 || c.Sim.BotAccuracy > 1 {
		return invalid("sim.bot_accuracy", "out of range", "[0,1]", c.Sim.BotAccuracy)
	}
	return nil
}

func invalid(field, reason, expected string, actual any) error {
	return &core.ConfigurationError{
		Component: "config",
		Field:     field,
		Reason:    reason,
		Expected:  expected,
		Actual:    fmt.Sprint(actual),
	}
}
