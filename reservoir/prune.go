package reservoir

// Prune zeros every readout weight whose magnitude is below threshold,
// expressed in the same units as Predict's output (Q8.8 under the default
// build, natural units under floatpoint). It returns the number of weights
// zeroed, or -1 for a nil Core. Pruning is monotonic: re-running Prune with
// the same or a smaller threshold never un-zeros a weight.
func (c *Core) Prune(threshold Sample) int {
	if c == nil {
		return -1
	}
	t := sampleToWeight(threshold)
	count := 0
	for i := range c.wOut {
		if c.wOut[i] != 0 && absWeight(c.wOut[i]) < t {
			c.wOut[i] = 0
			count++
		}
	}
	return count
}
