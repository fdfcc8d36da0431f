package reservoir

import "testing"

func TestMemoryUsageIsCompileTimeConstant(t *testing.T) {
	a, err := Birth(1)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	b, err := Birth(2)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	if a.MemoryUsage() != b.MemoryUsage() {
		t.Fatalf("MemoryUsage differs across instances: %d != %d", a.MemoryUsage(), b.MemoryUsage())
	}
	if a.MemoryUsage() <= 0 {
		t.Fatalf("MemoryUsage = %d, want > 0", a.MemoryUsage())
	}
}

func TestAgeSecondsNonNegative(t *testing.T) {
	c, err := Birth(1)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	if c.AgeSeconds() < 0 {
		t.Fatalf("AgeSeconds = %d, want >= 0", c.AgeSeconds())
	}
}

func TestHashToStringLength(t *testing.T) {
	c, err := Birth(1)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	s := HashToString(c.Certificate.Hash)
	if len(s) != 32 {
		t.Fatalf("HashToString length = %d, want 32", len(s))
	}
}

func TestHashToStringDeterministic(t *testing.T) {
	hash := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if HashToString(hash) != HashToString(hash) {
		t.Fatal("HashToString is not deterministic")
	}
}
