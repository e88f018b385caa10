package config

import "github.com/vovakirdan/precision-drop/internal/core"

// Preset represents a named difficulty level. A preset swaps the weighted
// table and the alignment chance; it does not change difficulty over time.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ValidPreset reports whether p names a known preset.
func ValidPreset(p Preset) bool {
	switch p {
	case PresetEasy, PresetNormal, PresetHard:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded table untouched.
func ApplyPreset(cfg *Config, p Preset) {
	switch p {
	case PresetEasy:
		cfg.Generation.AlignChance = 50
		cfg.Generation.GapConfigs = []GapConfig{
			{TotalGaps: 1, GapSpan: core.IntRange{Min: 5, Max: 7}, Chance: 30},
			{TotalGaps: 2, GapSpan: core.IntRange{Min: 4, Max: 6}, Chance: 50},
			{TotalGaps: 3, GapSpan: core.IntRange{Min: 3, Max: 5}, Chance: 20},
		}
		cfg.Generation.HazardRange = core.NewRange(28, 30)
	case PresetHard:
		cfg.Generation.AlignChance = 10
		cfg.Generation.GapConfigs = []GapConfig{
			{TotalGaps: 1, GapSpan: core.IntRange{Min: 3, Max: 4}, Chance: 60},
			{TotalGaps: 2, GapSpan: core.IntRange{Min: 2, Max: 3}, Chance: 30},
			{TotalGaps: 3, GapSpan: core.IntRange{Min: 2, Max: 2}, Chance: 10},
		}
		cfg.Generation.HazardRange = core.NewRange(18, 30)
	}
}
