package reservoir

// The getters below expose Core's otherwise-unexported fields read-only,
// for callers (and tests) that need to inspect state without risking a
// write that would break the fixed-size/no-reallocation contract.

// State returns a copy of the current recurrent state.
func (c *Core) State() [ReservoirSize]Accum {
	return c.state
}

// WIn returns a copy of the input weight matrix.
func (c *Core) WIn() [ReservoirSize * InputSize]Weight {
	return c.wIn
}

// WRes returns a copy of the sparse reservoir weights, parallel to
// SparseIndices.
func (c *Core) WRes() [SparseCapacity]Weight {
	return c.wRes
}

// WOut returns a copy of the trained (or zero, if untrained) readout
// weights.
func (c *Core) WOut() [OutputSize * ReservoirSize]Weight {
	return c.wOut
}

// SparseIndices returns a copy of the occupied sparse connection indices;
// only the first SparseCount entries are meaningful.
func (c *Core) SparseIndices() [SparseCapacity]uint16 {
	return c.sparseIndices
}

// SparseCount reports how many sparse reservoir connections were
// populated at birth.
func (c *Core) SparseCount() uint16 {
	return c.sparseCount
}

// IsTrained reports whether Train has ever succeeded on this Core.
func (c *Core) IsTrained() bool {
	return c.isTrained
}

// SamplesProcessed reports the lifetime count of Update calls.
func (c *Core) SamplesProcessed() uint32 {
	return c.samplesProcessed
}

// LearningSessions reports how many times Train has completed.
func (c *Core) LearningSessions() uint32 {
	return c.learningSessions
}
