package random

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
	}
}

func TestNewSeed(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 20; i++ {
		s, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Error("Expected NewSeed to vary")
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Floats: []float64{0.1, 0.9}, Ints: []int{7, -1}, DefaultFloat: 0.5, DefaultInt: 3}

	if got := s.Float64(); got != 0.1 {
		t.Errorf("Expected 0.1, got %v", got)
	}
	if got := s.Float64(); got != 0.9 {
		t.Errorf("Expected 0.9, got %v", got)
	}
	if got := s.Float64(); got != 0.5 {
		t.Errorf("Expected default 0.5, got %v", got)
	}
	if got := s.IntN(5); got != 2 {
		t.Errorf("Expected 7 mod 5 = 2, got %d", got)
	}
	if got := s.IntN(5); got != 4 {
		t.Errorf("Expected -1 wrapped to 4, got %d", got)
	}
	if got := s.IntN(2); got != 1 {
		t.Errorf("Expected default 3 mod 2 = 1, got %d", got)
	}
}
