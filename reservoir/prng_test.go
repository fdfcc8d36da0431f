package reservoir

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.next(), b.next()
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
		if va > 0x7fffffff {
			t.Fatalf("draw %d escaped the 31-bit mask: %d", i, va)
		}
	}
}

func TestRNGDifferentSeedsDiverge(t *testing.T) {
	a := newRNG(1)
	b := newRNG(2)
	if a.next() == b.next() {
		t.Fatal("distinct seeds produced the same first draw")
	}
}

func TestBirthHashDeterministic(t *testing.T) {
	h1 := birthHash(7, 1000)
	h2 := birthHash(7, 1000)
	if h1 != h2 {
		t.Fatalf("birthHash not deterministic: %x != %x", h1, h2)
	}
	h3 := birthHash(7, 1001)
	if h1 == h3 {
		t.Fatal("birthHash ignored birthTime")
	}
}
