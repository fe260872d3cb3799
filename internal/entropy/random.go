// Package entropy supplies seeds for tournaments. A tournament configured
// without a seed draws one from crypto/rand; per-round seeds are derived from
// the tournament seed so a run can be replayed from its logged seed.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a fresh non-zero seed from crypto/rand.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen but the clock still gives a usable seed.
		slog.Debug("crypto/rand seed failed", "error", err)
		return time.Now().UnixNano() | 1
	}
	// Drop the sign bit so seeds print as positive numbers.
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Derive mixes a base seed with a stream index (a round number, a side
// index) into an independent seed using the splitmix64 finalizer.
func Derive(base int64, stream int) int64 {
	z := uint64(base) + uint64(stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z >> 1)
}
