package tomlrand

import "testing"

func TestRngDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 100; i++ {
		va := a.uniform()
		vb := b.uniform()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
	}
}

func TestRngIntRangeBounds(t *testing.T) {
	g := newRNG(1)
	for i := 0; i < 1000; i++ {
		v := g.intRange(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("intRange(3,7) produced %d", v)
		}
	}
}

func TestRngIntRangeSingleton(t *testing.T) {
	g := newRNG(1)
	for i := 0; i < 10; i++ {
		if v := g.intRange(5, 5); v != 5 {
			t.Fatalf("intRange(5,5) = %d, want 5", v)
		}
	}
}

func TestRandExpClampsToRange(t *testing.T) {
	g := newRNG(7)
	for i := 0; i < 5000; i++ {
		v := g.randExp(2, 0, 10)
		if v < 0 || v > 10 {
			t.Fatalf("randExp out of [0,10]: %d", v)
		}
	}
}

func TestRandExpMinEqualsMax(t *testing.T) {
	g := newRNG(7)
	for i := 0; i < 20; i++ {
		if v := g.randExp(2, 4, 4); v != 4 {
			t.Fatalf("randExp(2,4,4) = %d, want 4", v)
		}
	}
}

func TestChoiceReturnsElement(t *testing.T) {
	g := newRNG(3)
	seq := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v := choice(g, seq)
		found := false
		for _, s := range seq {
			if s == v {
				found = true
			}
		}
		if !found {
			t.Fatalf("choice returned %q, not in %v", v, seq)
		}
	}
}

func TestWeightedChoiceSkewsTowardHeavierWeight(t *testing.T) {
	g := newRNG(9)
	counts := make([]int, 2)
	for i := 0; i < 2000; i++ {
		counts[g.weightedChoice([]float64{1, 9})]++
	}
	if counts[1] <= counts[0] {
		t.Fatalf("expected index 1 to dominate, got %v", counts)
	}
}

func TestFormatHexWidthAndDigits(t *testing.T) {
	g := newRNG(11)
	for i := 0; i < 200; i++ {
		s := g.formatHex(0xab, 4)
		if len(s) != 4 {
			t.Fatalf("formatHex width = %d, want 4 (%q)", len(s), s)
		}
		for _, c := range s {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
				t.Fatalf("formatHex produced non-hex digit %q in %q", c, s)
			}
		}
	}
}

func TestFormatHexGrowsPastMinwidth(t *testing.T) {
	g := newRNG(11)
	s := g.formatHex(0x10ffff, 2)
	if len(s) < 6 {
		t.Fatalf("formatHex(0x10ffff, 2) = %q, too short", s)
	}
}
