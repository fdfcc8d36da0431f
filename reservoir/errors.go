package reservoir

import "errors"

// Sentinel errors returned by Core's operations. Callers compare with
// errors.Is; this package never panics except at init() time over
// misconfigured compile-time dimensions.
var (
	// ErrInvalidArgument covers a nil Core, a nil/wrongly-sized input or
	// output buffer, or any other caller-supplied argument that fails a
	// precondition check.
	ErrInvalidArgument = errors.New("reservoir: invalid argument")
	// ErrTooFewSamples is returned by Train when the sample count does not
	// exceed the washout length.
	ErrTooFewSamples = errors.New("reservoir: sample count must exceed washout")
	// ErrOpenFailed wraps an underlying filesystem error from Save/Load.
	ErrOpenFailed = errors.New("reservoir: open failed")
	// ErrShortWrite indicates a snapshot write did not complete in full.
	ErrShortWrite = errors.New("reservoir: short write")
	// ErrShortRead indicates a snapshot on disk is truncated or malformed.
	ErrShortRead = errors.New("reservoir: short read")
)
