// Package reservoir implements Momento Cero, an Echo State Network engine
// sized for microcontroller-class hardware. A Core is born from a 32-bit
// seed, ingests a scalar (or low-dimensional) time series one sample at a
// time, and exposes a trained linear readout over its recurrent state.
//
// Every buffer inside Core is a fixed-size array whose length is fixed at
// compile time by the constants in dims.go, so Core's footprint never
// changes after Birth and no operation in this package allocates on the
// hot path. The package never logs and never panics except at init() time,
// when the compile-time dimension constants themselves are invalid.
package reservoir
