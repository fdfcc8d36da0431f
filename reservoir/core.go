package reservoir

import "time"

// Core is a single Echo State Network instance: a birth certificate,
// recurrent state, input/reservoir/readout weights and a handful of
// counters. Its size is fixed at compile time by ReservoirSize, InputSize,
// OutputSize and SparsityFactor (dims.go) — no field ever grows.
type Core struct {
	Certificate Certificate

	state [ReservoirSize]Accum

	wIn  [ReservoirSize * InputSize]Weight
	wRes [SparseCapacity]Weight
	wOut [OutputSize * ReservoirSize]Weight

	sparseIndices [SparseCapacity]uint16
	sparseCount   uint16

	samplesProcessed uint32
	learningSessions uint32
	isTrained        bool
}

// Birth constructs a fresh Core from a 32-bit seed. A zero seed is replaced
// with the current Unix time, the same fallback the original firmware used
// when no seed was burned into flash. The dense input weights and the
// sparse reservoir connections are drawn from one LCG stream seeded with
// the effective seed alone (the birth certificate's hash comes from a
// separate generator seeded with seed XOR birth time), so two Cores born
// from the same seed are identical down to the last weight.
func Birth(seed uint32) (Core, error) {
	var c Core

	birthTime := time.Now().Unix()
	if seed == 0 {
		seed = uint32(birthTime)
	}

	c.Certificate = Certificate{
		BirthTime:     birthTime,
		Hash:          birthHash(seed, birthTime),
		ReservoirSeed: seed,
		ReservoirSize: uint16(ReservoirSize),
		Version:       packedVersion(),
	}

	gen := newRNG(seed)

	for i := range c.wIn {
		c.wIn[i] = drawWeight(gen.next())
	}

	const totalConnections = ReservoirSize * ReservoirSize
	target := totalConnections / SparsityFactor
	for attempt := 0; attempt < target && int(c.sparseCount) < SparseCapacity; attempt++ {
		idx := uint16(gen.next() % totalConnections)

		exists := false
		for j := 0; j < int(c.sparseCount); j++ {
			if c.sparseIndices[j] == idx {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		c.sparseIndices[c.sparseCount] = idx
		c.wRes[c.sparseCount] = drawWeight(gen.next())
		c.sparseCount++
	}

	return c, nil
}

// Reset zeros the recurrent state, leaving weights, counters and the birth
// certificate untouched. A nil Core is a silent no-op.
func (c *Core) Reset() {
	if c == nil {
		return
	}
	for i := range c.state {
		c.state[i] = 0
	}
}
