package reservoir

import "math"

// Train replays inputs through Update, accumulates a ridge-regression
// system over the post-washout states, solves it by Gauss-Jordan
// elimination with partial pivoting, and installs the result as the new
// readout. It returns the mean squared error of the trained readout
// replayed over the same data; the replay leaves state wherever the last
// sample put it, not reset to zero.
//
// inputs must hold n*InputSize samples and targets n*OutputSize samples
// for the same n; n must exceed washout.
func (c *Core) Train(inputs, targets []Sample, washout int) (float64, error) {
	if c == nil || inputs == nil || targets == nil {
		return -1, ErrInvalidArgument
	}
	if len(inputs)%InputSize != 0 || len(targets)%OutputSize != 0 {
		return -1, ErrInvalidArgument
	}
	n := len(inputs) / InputSize
	if len(targets)/OutputSize != n {
		return -1, ErrInvalidArgument
	}
	if n <= washout {
		return -2, ErrTooFewSamples
	}

	c.Reset()

	var a [ReservoirSize][ReservoirSize]float64
	var b [ReservoirSize][OutputSize]float64
	for i := 0; i < ReservoirSize; i++ {
		a[i][i] = 1e-4
	}

	for t := 0; t < n; t++ {
		if err := c.Update(inputs[t*InputSize : (t+1)*InputSize]); err != nil {
			return -1, err
		}
		if t < washout {
			continue
		}

		var stateF [ReservoirSize]float64
		for i := 0; i < ReservoirSize; i++ {
			stateF[i] = accumToFloat64(c.state[i])
		}
		var targetF [OutputSize]float64
		for o := 0; o < OutputSize; o++ {
			targetF[o] = accumToFloat64(targets[t*OutputSize+o])
		}

		for i := 0; i < ReservoirSize; i++ {
			for j := i; j < ReservoirSize; j++ {
				prod := stateF[i] * stateF[j]
				a[i][j] += prod
				if i != j {
					a[j][i] += prod
				}
			}
			for o := 0; o < OutputSize; o++ {
				b[i][o] += stateF[i] * targetF[o]
			}
		}
	}

	inv := gaussJordanInvert(a)

	for o := 0; o < OutputSize; o++ {
		for i := 0; i < ReservoirSize; i++ {
			sum := 0.0
			for k := 0; k < ReservoirSize; k++ {
				sum += inv[i][k] * b[k][o]
			}
			if sum > 2 {
				sum = 2
			}
			if sum < -2 {
				sum = -2
			}
			c.wOut[o*ReservoirSize+i] = float64ToWeight(sum)
		}
	}

	c.isTrained = true
	c.learningSessions++

	return c.replayMSE(inputs, targets, washout)
}

// gaussJordanInvert returns the inverse of a square matrix, computed on its
// own copy of a by Gauss-Jordan elimination with partial pivoting, substituting a tiny pivot when a
// column is exactly singular rather than dividing by zero.
func gaussJordanInvert(a [ReservoirSize][ReservoirSize]float64) [ReservoirSize][ReservoirSize]float64 {
	var inv [ReservoirSize][ReservoirSize]float64
	for i := 0; i < ReservoirSize; i++ {
		inv[i][i] = 1
	}

	for col := 0; col < ReservoirSize; col++ {
		maxRow := col
		maxVal := math.Abs(a[col][col])
		for row := col + 1; row < ReservoirSize; row++ {
			if v := math.Abs(a[row][col]); v > maxVal {
				maxVal = v
				maxRow = row
			}
		}
		if maxRow != col {
			a[col], a[maxRow] = a[maxRow], a[col]
			inv[col], inv[maxRow] = inv[maxRow], inv[col]
		}

		pivot := a[col][col]
		if pivot == 0 {
			pivot = 1e-10
		}
		for k := 0; k < ReservoirSize; k++ {
			a[col][k] /= pivot
			inv[col][k] /= pivot
		}

		for row := 0; row < ReservoirSize; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			for k := 0; k < ReservoirSize; k++ {
				a[row][k] -= factor * a[col][k]
				inv[row][k] -= factor * inv[col][k]
			}
		}
	}

	return inv
}

// replayMSE resets the Core, replays inputs through the (now trained)
// readout and reports the mean squared error against targets over the
// post-washout window. The replay starts at washout with no warm-up pass,
// matching aeon_train's final loop exactly.
func (c *Core) replayMSE(inputs, targets []Sample, washout int) (float64, error) {
	c.Reset()

	n := len(inputs) / InputSize
	var sumSq float64
	count := 0

	for t := washout; t < n; t++ {
		if err := c.Update(inputs[t*InputSize : (t+1)*InputSize]); err != nil {
			return -1, err
		}
		pred, err := c.Predict()
		if err != nil {
			return -1, err
		}
		for o := 0; o < OutputSize; o++ {
			p := accumToFloat64(pred[o])
			y := accumToFloat64(targets[t*OutputSize+o])
			diff := p - y
			sumSq += diff * diff
			count++
		}
	}

	return sumSq / float64(count), nil
}
