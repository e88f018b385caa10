package config

import (
	_ "embed"

	"github.com/vovakirdan/precision-drop/internal/core"
)

//go:embed defaults/drop.yaml
var defaultDropYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDropYAML
}

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Generation: GenerationConfig{
			Segments:           36,
			FirstBatchCount:    10,
			FirstBatchRotation: core.FloatRange{Min: -50, Max: 50},
			AlignChance:        25,
			AlignDelta:         core.FloatRange{Min: -10, Max: 10},
			FreshRotation:      core.FloatRange{Min: 20, Max: 340},
			HazardRange:        core.NewRange(25, 30),
			GapConfigs: []GapConfig{
				{TotalGaps: 1, GapSpan: core.IntRange{Min: 4, Max: 6}, Chance: 40},
				{TotalGaps: 2, GapSpan: core.IntRange{Min: 3, Max: 5}, Chance: 35},
				{TotalGaps: 3, GapSpan: core.IntRange{Min: 2, Max: 4}, Chance: 20},
				{TotalGaps: 4, GapSpan: core.IntRange{Min: 2, Max: 3}, Chance: 5},
			},
		},
		Platform: PlatformConfig{
			Spacing:          4,
			Parts:            6,
			BounceCooldownMS: 150,
			EvictDistance:    24,
			BreakForce:       3,
		},
		Flow: FlowConfig{
			Rule:           "combo",
			ComboThreshold: 2,
		},
		Player: PlayerConfig{
			JumpStrength: 9,
			Gravity:      30,
			MaxFallSpeed: 20,
		},
		Sim: SimConfig{
			TickRate:    60,
			BotAccuracy: 0.9,
			RotateStep:  6,
		},
	}
}
