// Package randutil derives reproducible math/rand/v2 sources from int64 seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so equal seeds deal equal hands.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Seed returns *opt when set, otherwise a time-based seed. Callers log the
// returned value so a run can be replayed.
func Seed(opt *int64) int64 {
	if opt != nil {
		return *opt
	}
	return time.Now().UnixNano()
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
