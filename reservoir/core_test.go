package reservoir

import "testing"

func TestBirthDeterministic(t *testing.T) {
	a, err := Birth(99)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	b, err := Birth(99)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}

	if a.WIn() != b.WIn() {
		t.Fatal("same seed produced different W_in")
	}
	if a.WRes() != b.WRes() {
		t.Fatal("same seed produced different W_reservoir")
	}
	if a.SparseIndices() != b.SparseIndices() {
		t.Fatal("same seed produced different sparse indices")
	}
	if a.SparseCount() != b.SparseCount() {
		t.Fatal("same seed produced different sparse count")
	}
	if a.Certificate.Hash != b.Certificate.Hash {
		t.Fatal("same seed produced different birth hash")
	}
}

func TestBirthZeroSeedFallsBackToClock(t *testing.T) {
	c, err := Birth(0)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	if c.Certificate.ReservoirSeed == 0 {
		t.Fatal("zero seed was not replaced with a clock-derived seed")
	}
}

func TestBirthStateAndReadoutStartZero(t *testing.T) {
	c, err := Birth(1)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	for i, s := range c.State() {
		if s != 0 {
			t.Fatalf("state[%d] = %v, want 0 immediately after birth", i, s)
		}
	}
	for i, w := range c.WOut() {
		if w != 0 {
			t.Fatalf("W_out[%d] = %v, want 0 immediately after birth", i, w)
		}
	}
	if c.IsTrained() {
		t.Fatal("freshly born core reports trained")
	}
}

func TestBirthSparseIndicesWithinBounds(t *testing.T) {
	c, err := Birth(123)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	indices := c.SparseIndices()
	seen := make(map[uint16]bool)
	for i := 0; i < int(c.SparseCount()); i++ {
		idx := indices[i]
		if int(idx) >= ReservoirSize*ReservoirSize {
			t.Fatalf("sparse index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("duplicate sparse index %d", idx)
		}
		seen[idx] = true
	}
	if int(c.SparseCount()) > SparseCapacity {
		t.Fatalf("sparse count %d exceeds capacity %d", c.SparseCount(), SparseCapacity)
	}
}

func TestResetZeroesStateOnly(t *testing.T) {
	c, err := Birth(5)
	if err != nil {
		t.Fatalf("Birth: %v", err)
	}
	input := make([]Sample, InputSize)
	for i := range input {
		input[i] = 10
	}
	if err := c.Update(input); err != nil {
		t.Fatalf("Update: %v", err)
	}

	before := c.SamplesProcessed()
	c.Reset()
	for i, s := range c.State() {
		if s != 0 {
			t.Fatalf("state[%d] = %v after Reset, want 0", i, s)
		}
	}
	if c.SamplesProcessed() != before {
		t.Fatal("Reset touched samplesProcessed, should only zero state")
	}

	c.Reset()
	for i, s := range c.State() {
		if s != 0 {
			t.Fatalf("second Reset left state[%d] = %v, want 0", i, s)
		}
	}
}

func TestNilCoreMethodsDoNotPanic(t *testing.T) {
	var c *Core
	c.Reset()
	if got := c.MemoryUsage(); got != 0 {
		t.Fatalf("MemoryUsage on nil = %d, want 0", got)
	}
	if got := c.AgeSeconds(); got != 0 {
		t.Fatalf("AgeSeconds on nil = %d, want 0", got)
	}
	if err := c.Update(make([]Sample, InputSize)); err == nil {
		t.Fatal("Update on nil Core did not return an error")
	}
	if _, err := c.Predict(); err == nil {
		t.Fatal("Predict on nil Core did not return an error")
	}
	if got := c.Prune(0); got != -1 {
		t.Fatalf("Prune on nil Core = %d, want -1", got)
	}
}
