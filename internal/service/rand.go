package service

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// derivedRand folds the base seed, a scope string and an instant into a
// dedicated generator. Every sampling site derives its own generator this
// way, so identical inputs always reproduce identical output and no
// process-global RNG state exists anywhere.
func derivedRand(seed int64, scope string, unix int64) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(scope))
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(seed))
	binary.BigEndian.PutUint64(buf[8:], uint64(unix))
	_, _ = h.Write(buf[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// noise draws a bounded perturbation in [-amp, +amp].
func noise(rng *rand.Rand, amp float64) float64 {
	return (rng.Float64()*2 - 1) * amp
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
