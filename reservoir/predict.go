package reservoir

// Predict runs the trained linear readout over the current state and
// returns a freshly allocated OutputSize-length result. Predict is pure:
// it never mutates state, weights or counters, so calling it repeatedly
// between Update calls always returns the same vector.
func (c *Core) Predict() ([]Sample, error) {
	if c == nil {
		return nil, ErrInvalidArgument
	}
	out := make([]Sample, OutputSize)
	if err := c.PredictInto(out); err != nil {
		return nil, err
	}
	return out, nil
}

// PredictInto writes the readout into a caller-supplied OutputSize-length
// buffer, for callers that want Predict's result without an allocation.
func (c *Core) PredictInto(out []Sample) error {
	if c == nil || out == nil || len(out) != OutputSize {
		return ErrInvalidArgument
	}
	for o := 0; o < OutputSize; o++ {
		var sum Accum
		for j := 0; j < ReservoirSize; j++ {
			sum += mulShift(c.wOut[o*ReservoirSize+j], c.state[j])
		}
		out[o] = sum
	}
	return nil
}
