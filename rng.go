package skiplist

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// newRNG returns a *mathrand.Rand seeded from an OS entropy source, so each
// storage's level assignments are independent of any other storage's.
// Falls back to math/rand's own default source only if the OS entropy read
// itself fails, which in practice never happens on supported platforms.
func newRNG() *mathrand.Rand {
	var seedBytes [8]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		return mathrand.New(mathrand.NewSource(mathrand.Int63()))
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return mathrand.New(mathrand.NewSource(seed))
}

// newSeededRNG returns a *mathrand.Rand with a caller-chosen seed, for
// reproducible tests.
func newSeededRNG(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

// nextLevelWord draws the single 64-bit word an insert consumes to decide
// how many levels, beyond level 0, the new node's tower reaches. Consecutive
// bits starting at bit 1 are consumed independently per level by the caller
// (storage.go's insertAfter), which is the canonical "geometric by coin
// flips" skip-list level policy.
func nextLevelWord(r *mathrand.Rand) uint64 {
	return r.Uint64()
}
