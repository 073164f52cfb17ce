package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)

	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("Draw %d diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestRNGSeedResets(t *testing.T) {
	r := NewRNG(777)

	first := make([]uint16, 50)
	for i := range first {
		first[i] = r.Next()
	}

	r.Seed(777)
	for i := range first {
		if v := r.Next(); v != first[i] {
			t.Fatalf("Draw %d after reseed = %d, expected %d", i, v, first[i])
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should not produce identical 20-draw prefixes")
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(42)
	for i := 0; i < 10000; i++ {
		if v := r.Next(); v > 255 {
			t.Fatalf("Next() = %d, expected <= 255 for 16-bit state", v)
		}
	}
}

func TestIntn(t *testing.T) {
	r := NewRNG(99)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d, out of range", v)
		}
		seen[v] = true
	}
	// All four directions should come up over 1000 draws.
	if len(seen) != 4 {
		t.Errorf("Intn(4) produced only %d distinct values over 1000 draws", len(seen))
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if r.Intn(-3) != 0 {
		t.Error("Intn of negative should return 0")
	}
}
