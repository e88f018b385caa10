package randutil

import "testing"

func TestFloatBounds(t *testing.T) {
	r := New(42)
	for i := 0; i < 10000; i++ {
		v := r.Float(-50, 50)
		if v < -50 || v >= 50 {
			t.Fatalf("Float(-50, 50) = %v, outside [-50, 50)", v)
		}
	}
}

func TestIntInclusive(t *testing.T) {
	r := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := r.Int(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Int(2, 5) = %d, outside [2, 5]", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Int(2, 5) never returned %d", v)
		}
	}
}

func TestDegenerateRange(t *testing.T) {
	r := New(1)
	if v := r.Int(3, 3); v != 3 {
		t.Errorf("Int(3, 3) = %d, expected 3", v)
	}
	if v := r.Float(1.5, 1.5); v != 1.5 {
		t.Errorf("Float(1.5, 1.5) = %v, expected 1.5", v)
	}
}

func TestRejectsInvertedBounds(t *testing.T) {
	r := New(1)

	assertPanics(t, "Int", func() { r.Int(5, 4) })
	assertPanics(t, "Float", func() { r.Float(1, 0) })
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		if a.Int(0, 1000) != b.Int(0, 1000) {
			t.Fatal("sources with the same seed diverged")
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same instance")
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s with min > max should panic", name)
		}
	}()
	fn()
}
