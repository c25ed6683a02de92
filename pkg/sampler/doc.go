// Package sampler provides the random selection primitives every name and
// place generator in this module is built on.
//
// A Generator binds an immutable Pool of strings to a Strategy. Two strategies
// ship with the package:
//
//   - Uniform gives every position the same probability.
//   - Linear assigns each position a weight that grows linearly towards the
//     front (Front) or the back (Back) of the pool. For a pool of n items the
//     front-biased weight of index i is n-i, the back-biased weight is i+1.
//
// For five items the front bias yields 5/15, 4/15, 3/15, 2/15 and 1/15, i.e.
// roughly 33.3%, 26.7%, 20%, 13.3% and 6.7%.
//
// # Sampling modes
//
// GenerateNonUnique draws with replacement and accepts sizes in [0, len(pool)].
// Generate draws distinct elements by rejection: single draws are repeated
// until enough distinct items have been collected. Sizes must be in
// [1, len(pool)], and pools larger than 100 items refuse requests above two
// thirds of the pool. Every rejection loop is capped by a maximum number of
// draws; hitting the cap yields ErrExhaustedRetries instead of spinning forever.
//
// # Randomness
//
// All generators share a process-wide Source unless WithSource is supplied.
// Nothing seeds the shared source deterministically: call Seed to get
// reproducible sequences, e.g. in tests.
//
//	sampler.Seed(420)
//	pool, _ := sampler.NewPool([]string{"blue", "red", "green", "yellow", "purple"})
//	gen := sampler.New(pool, sampler.Linear{Direction: sampler.Front})
//	colors, err := gen.Generate(3)
//
// # Errors
//
// Size violations are reported as *SizeError, which matches ErrInvalidSize
// with errors.Is and carries the requested size and the valid range.
package sampler
