package vecsum

import "math/rand/v2"

// RandomMax is the inclusive upper bound of values produced by Random.
const RandomMax = 100000

// Triangular returns the first n triangular numbers: t[i] = i*(i+1)/2.
// See https://en.wikipedia.org/wiki/Triangular_number.
//
// Parameters:
//   - n: The number of values to produce; n <= 0 yields an empty slice.
//
// Returns:
//   - []int: The generated sequence of length max(n, 0).
func Triangular(n int) []int {
	if n < 0 {
		n = 0
	}
	arr := make([]int, n)
	for i := 0; i < n; i++ {
		arr[i] = (i * (i + 1)) / 2
	}
	return arr
}

// Random returns n uniformly distributed integers in [0, RandomMax].
// The same seed always produces the same sequence, which keeps end-to-end
// tests deterministic.
//
// Parameters:
//   - n: The number of values to produce; n <= 0 yields an empty slice.
//   - seed: The generator seed.
//
// Returns:
//   - []int: The generated sequence of length max(n, 0).
func Random(n int, seed uint64) []int {
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	arr := make([]int, n)
	for i := 0; i < n; i++ {
		arr[i] = rng.IntN(RandomMax + 1)
	}
	return arr
}
