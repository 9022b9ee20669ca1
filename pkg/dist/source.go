package dist

import "math/rand/v2"

// DefaultSeed is the seed the command line tools start from.
const DefaultSeed uint64 = 42

// NewSource returns the generator every sampling call is meant to share:
// PCG from math/rand/v2 seeded with (seed, seed). The algorithm is pinned so a
// seed reproduces the same stream on every platform.
func NewSource(seed uint64) *rand.PCG {
	return rand.NewPCG(seed, seed)
}
