package reservoir

// Update advances the reservoir by one time step: it mixes input through
// W_in, mixes the previous state through the sparse recurrent weights,
// applies the saturating nonlinearity and stores the result as the new
// state. input must have exactly InputSize elements. Update never
// allocates.
func (c *Core) Update(input []Sample) error {
	if c == nil || input == nil || len(input) != InputSize {
		return ErrInvalidArgument
	}

	var pre [ReservoirSize]Accum

	for i := 0; i < ReservoirSize; i++ {
		var sum Accum
		for j := 0; j < InputSize; j++ {
			sum += mulShift(c.wIn[i*InputSize+j], input[j])
		}
		pre[i] = sum
	}

	for k := 0; k < int(c.sparseCount); k++ {
		idx := c.sparseIndices[k]
		row := int(idx) / ReservoirSize
		col := int(idx) % ReservoirSize
		pre[row] += mulShift(c.wRes[k], c.state[col])
	}

	for i := 0; i < ReservoirSize; i++ {
		c.state[i] = tanhApprox(pre[i])
	}

	c.samplesProcessed++
	return nil
}
