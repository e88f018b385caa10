package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/precision-drop/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDefaultTableSums(t *testing.T) {
	sum := 0.0
	for _, gc := range Default().Generation.GapConfigs {
		sum += gc.Chance
	}
	if sum != 100 {
		t.Errorf("default chances sum = %v, expected 100", sum)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("platform:\n  spacing: 6\nflow:\n  rule: plain\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Platform.Spacing != 6 || cfg.Flow.Rule != "plain" {
		t.Errorf("overrides not applied: spacing=%v rule=%q", cfg.Platform.Spacing, cfg.Flow.Rule)
	}
	if cfg.Platform.Parts != 6 || cfg.Generation.Segments != 36 {
		t.Errorf("defaults lost: parts=%d segments=%d", cfg.Platform.Parts, cfg.Generation.Segments)
	}
	if len(cfg.Generation.GapConfigs) != 4 {
		t.Errorf("gap configs = %d, expected default 4", len(cfg.Generation.GapConfigs))
	}
}

func TestParseReplacesTable(t *testing.T) {
	data := []byte(`
generation:
  gap_configs:
    - {total_gaps: 2, gap_span: {min: 2, max: 3}, chance: 100}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Generation.GapConfigs) != 1 || cfg.Generation.GapConfigs[0].TotalGaps != 2 {
		t.Errorf("GapConfigs = %+v, expected the single file entry", cfg.Generation.GapConfigs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"parts", func(c *Config) { c.Platform.Parts = 5 }, "platform.parts"},
		{"spacing", func(c *Config) { c.Platform.Spacing = 0 }, "platform.spacing"},
		{"segments", func(c *Config) { c.Generation.Segments = 0 }, "generation.segments"},
		{"empty table", func(c *Config) { c.Generation.GapConfigs = nil }, "generation.gap_configs"},
		{"too many gaps", func(c *Config) { c.Generation.GapConfigs[0].TotalGaps = 40 }, "generation.gap_configs[0].total_gaps"},
		{"chance", func(c *Config) { c.Generation.GapConfigs[1].Chance = -1 }, "generation.gap_configs[1].chance"},
		{"span wider than lane", func(c *Config) { c.Generation.GapConfigs[3].GapSpan = core.IntRange{Min: 10, Max: 12} }, "generation.gap_configs[3].gap_span"},
		{"hazard", func(c *Config) { c.Generation.HazardRange = core.NewRange(30, 40) }, "generation.hazard_range"},
		{"rotation", func(c *Config) { c.Generation.FreshRotation = core.FloatRange{Min: 10, Max: 0} }, "generation.fresh_rotation"},
		{"accuracy", func(c *Config) { c.Sim.BotAccuracy = 2 }, "sim.bot_accuracy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			err := cfg.Validate()
			if !core.IsConfiguration(err) {
				t.Fatalf("Validate() error = %v, expected ConfigurationError", err)
			}
			if got := err.(*core.ConfigurationError).Field; got != tt.field {
				t.Errorf("Field = %q, expected %q", got, tt.field)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  gravity: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Gravity != 12 {
		t.Errorf("Gravity = %v, expected 12", cfg.Player.Gravity)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("platform: [1, 2"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad yaml) expected error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Marshal() output does not parse back to the defaults")
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range Presets() {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: Validate() error = %v", p, err)
		}
		sum := 0.0
		for _, gc := range cfg.Generation.GapConfigs {
			sum += gc.Chance
		}
		if sum != 100 {
			t.Errorf("preset %s: chances sum = %v, expected 100", p, sum)
		}
	}
	if ValidPreset("brutal") {
		t.Error("ValidPreset(brutal) = true, expected false")
	}
}
