package reservoir

import (
	"encoding/hex"
	"time"
	"unsafe"
)

// MemoryUsage reports Core's in-memory footprint in bytes, the same number
// sizeof(aeon_core_t) would have reported in the original firmware. It
// returns 0 for a nil Core.
func (c *Core) MemoryUsage() int {
	if c == nil {
		return 0
	}
	return int(unsafe.Sizeof(*c))
}

// AgeSeconds reports the number of seconds since Birth. It returns 0 for a
// nil Core.
func (c *Core) AgeSeconds() int64 {
	if c == nil {
		return 0
	}
	return time.Now().Unix() - c.Certificate.BirthTime
}

// HashToString renders a birth certificate hash as 32 lowercase hex
// characters.
func HashToString(hash [16]byte) string {
	return hex.EncodeToString(hash[:])
}
