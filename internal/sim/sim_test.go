package sim

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/precision-drop/internal/config"
	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
	"github.com/vovakirdan/precision-drop/internal/randutil"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

func testWorld(t *testing.T, cfg obstacle.Config) (*World, *obstacle.Obstacle, *core.StepClock) {
	t.Helper()
	w := NewWorld(Physics{Gravity: 30, JumpStrength: 9, MaxFallSpeed: 20})
	clock := core.NewStepClock()
	b, err := obstacle.NewBuilder(obstacle.Settings{
		Segments: 36, Parts: 6, Spacing: 4, BounceCooldown: obstacle.DefaultBounceCooldown, BreakForce: 3,
	}, w, clock, randutil.New(1), nil)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	o, err := b.Build(cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return w, o, clock
}

func fall(w *World, clock *core.StepClock, ticks int) {
	for i := 0; i < ticks; i++ {
		clock.Advance(time.Second / 60)
		w.Step(1.0 / 60)
	}
}

func TestSegmentAt(t *testing.T) {
	w, o, _ := testWorld(t, obstacle.Config{RotationDegrees: 20, GapRanges: []core.AngularRange{core.NewRange(0, 2)}})
	r := w.Rings()[0]
	if r.Handle != o.Handle() {
		t.Fatalf("ring handle = %d, expected %d", r.Handle, o.Handle())
	}
	tests := []struct {
		deg, tower float64
		expected   int
	}{
		{20, 0, 0},
		{29.9, 0, 0},
		{30, 0, 1},
		{0, 0, 34},
		{0, -20, 0},
		{0, 340, 0},
	}
	for _, tt := range tests {
		if got := r.SegmentAt(tt.deg, tt.tower).Index(); got != tt.expected {
			t.Errorf("SegmentAt(%v, %v) = %d, expected %d", tt.deg, tt.tower, got, tt.expected)
		}
	}
}

func TestBallLandsOnSolid(t *testing.T) {
	w, o, clock := testWorld(t, obstacle.Config{GapRanges: []core.AngularRange{core.NewRange(10, 14)}})
	collided := 0
	o.Collided.Subscribe(func(*obstacle.Obstacle) { collided++; w.Jump() })

	fall(w, clock, 60)
	if collided == 0 {
		t.Fatal("ball never collided with the solid under it")
	}
	if w.BallDepth() < 0 {
		t.Errorf("BallDepth() = %v, expected the ball above the ring", w.BallDepth())
	}
	if o.State() != obstacle.Intact {
		t.Errorf("State() = %v, expected intact", o.State())
	}
}

func TestBallFallsThroughGap(t *testing.T) {
	w, o, clock := testWorld(t, obstacle.Config{GapRanges: []core.AngularRange{core.NewRange(0, 4)}})
	passed := 0
	o.Passed.Subscribe(func(*obstacle.Obstacle) { passed++ })

	fall(w, clock, 90)
	if passed != 1 {
		t.Errorf("Passed = %d, expected 1", passed)
	}
	if w.BallDepth() >= 0 {
		t.Errorf("BallDepth() = %v, expected below the ring", w.BallDepth())
	}
	if len(w.Shards()) == 0 {
		// Shards expire after ShardLifetime; 90 ticks may outlive them.
		if w.BallDepth() > -10 {
			t.Error("no shards after breaking the ring")
		}
	}
}

func TestHazardContact(t *testing.T) {
	w, o, clock := testWorld(t, obstacle.Config{
		GapRanges:   []core.AngularRange{core.NewRange(10, 12)},
		HazardRange: core.NewRange(0, 2),
	})
	hazards := 0
	o.HazardTouched.Subscribe(func(*obstacle.Obstacle) { hazards++ })
	fall(w, clock, 60)
	if hazards == 0 {
		t.Error("HazardTouched never fired")
	}
}

func TestDespawn(t *testing.T) {
	w, o, _ := testWorld(t, obstacle.Config{})
	w.Despawn(o.Handle())
	if len(w.Rings()) != 0 {
		t.Errorf("Rings() = %d, expected 0", len(w.Rings()))
	}
}

func TestBotAlignsGap(t *testing.T) {
	w, _, _ := testWorld(t, obstacle.Config{RotationDegrees: 90, GapRanges: []core.AngularRange{core.NewRange(6, 8)}})
	bot := NewBot(1, 360, randutil.New(1))
	w.Rotate(bot.Steer(w))
	seg := w.Rings()[0].SegmentAt(BallAngle, w.TowerRotation())
	if seg.Variant() != ring.Gap {
		t.Errorf("segment under ball after steering = %v, expected gap", seg.Variant())
	}
}

func autoConfig() config.Config {
	cfg := config.Default()
	cfg.Sim.BotAccuracy = 1
	cfg.Sim.RotateStep = 360
	return cfg
}

func TestSessionAutoPilot(t *testing.T) {
	s, err := NewSession(Options{Config: autoConfig(), Seed: 9, Strict: true, AutoPilot: true})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	st, err := s.Run(context.Background(), 60*30)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if st.GameOver {
		t.Errorf("perfect bot hit a hazard: %+v", st)
	}
	if st.Passes < 20 {
		t.Errorf("Passes = %d, expected at least 20 in 30s", st.Passes)
	}
	if st.Smashes == 0 {
		t.Error("Smashes = 0, expected combos from an unbroken streak")
	}
	if n := s.Game().Arena.Len(); n > 40 {
		t.Errorf("arena holds %d obstacles, expected eviction to bound it", n)
	}
	if s.Ticks() != 60*30 || s.Elapsed() != 60*30*(time.Second/60) {
		t.Errorf("Ticks() = %d Elapsed() = %v, expected 1800 ticks of 1/60s", s.Ticks(), s.Elapsed())
	}
}

func TestSessionPauseAndReset(t *testing.T) {
	s, err := NewSession(Options{Config: config.Default(), Seed: 3})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if st := s.Step(pause); !st.Paused {
		t.Error("Step(pause) did not pause")
	}
	s.Step(core.NewInputFrame())
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d while paused, expected 0", s.Ticks())
	}
	// Unpausing resumes in the same tick.
	s.Step(pause)
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if s.Ticks() != 0 || s.Game().Arena.Len() != 10 {
		t.Errorf("after Reset: Ticks() = %d arena = %d, expected 0 and 10", s.Ticks(), s.Game().Arena.Len())
	}
}

func TestSessionRunCancelled(t *testing.T) {
	s, _ := NewSession(Options{Config: autoConfig(), Seed: 1, AutoPilot: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, 100); err == nil {
		t.Error("Run() with cancelled context expected error")
	}
}

func TestRender(t *testing.T) {
	s, _ := NewSession(Options{Config: config.Default(), Seed: 5})
	scr := core.NewScreen(80, 24)
	s.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", scr.Row(0))
	}
	ballRow := HUDRows + (24-HUDRows)/3
	if got := scr.Get(40, ballRow); got != BallChar {
		t.Errorf("ball cell = %q, expected %q", got, BallChar)
	}
	solid := 0
	for y := 0; y < 24; y++ {
		solid += strings.Count(scr.Row(y), string(SolidChar))
	}
	if solid == 0 {
		t.Error("no ring drawn")
	}
}
