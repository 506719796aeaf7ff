// Package quick implements property testing helpers inspired by the standard
// testing/quick package, testing slices over a wider range of sizes than the
// hardcoded maximum of 50 used by the standard library, with a deterministic
// seed so failures are reproducible.
package quick

import (
	"fmt"
	"math/rand"
)

// Sizes is the set of slice lengths the Check function exercises. It covers
// the degenerate cases (empty, single element) as well as lengths around
// typical page and vector boundaries.
var Sizes = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 15, 16, 17, 31, 32, 33,
	63, 64, 65, 99, 100, 101,
	127, 128, 129, 255, 256, 257,
	1000, 1023, 1024, 1025,
	4000, 4095, 4096, 4097,
}

// Check runs the predicate f against randomly generated slices of every
// length in Sizes, producing elements with the gen function. It returns an
// error describing the first failing input, or nil if all runs passed.
func Check[T any](f func(values []T) bool, gen func(r *rand.Rand) T) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range Sizes {
		for run := 0; run < 3; run++ {
			values := make([]T, n)
			for i := range values {
				values[i] = gen(r)
			}
			if !f(values) {
				return fmt.Errorf("run %d: predicate failed on input of size %d: %v", run+1, n, values)
			}
		}
	}
	return nil
}

// Int31n returns a generator of random integers in [0, n), handy for inputs
// with many repeated values.
func Int31n(n int32) func(r *rand.Rand) int32 {
	return func(r *rand.Rand) int32 { return r.Int31n(n) }
}
