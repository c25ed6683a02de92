package sampler

import (
	"fmt"
	"sort"
)

// Strategy decides how positions of a pool are weighted when drawing.
type Strategy interface {
	// SampleWithReplacement draws size items; the same item may repeat.
	SampleWithReplacement(src *Source, pool Pool, size int) []string
	// SampleWithoutReplacement draws size distinct items by rejection,
	// giving up after maxAttempts draws when maxAttempts > 0.
	SampleWithoutReplacement(src *Source, pool Pool, size, maxAttempts int) ([]string, error)
}

// Direction selects which end of the pool a Linear strategy favours.
type Direction int

const (
	// Front favours index 0: weight of index i is n-i.
	Front Direction = iota
	// Back favours the last index: weight of index i is i+1.
	Back
)

func (d Direction) String() string {
	if d == Back {
		return "back"
	}
	return "front"
}

// Uniform gives every position of the pool the same weight.
type Uniform struct{}

func (Uniform) SampleWithReplacement(src *Source, pool Pool, size int) []string {
	return drawMany(src, pool, size, uniformPick)
}

func (Uniform) SampleWithoutReplacement(src *Source, pool Pool, size, maxAttempts int) ([]string, error) {
	return drawDistinct(src, pool, size, maxAttempts, uniformPick)
}

// Linear weights positions by rank, ramping linearly towards Direction.
type Linear struct {
	Direction Direction
}

func (l Linear) SampleWithReplacement(src *Source, pool Pool, size int) []string {
	return drawMany(src, pool, size, l.pick)
}

func (l Linear) SampleWithoutReplacement(src *Source, pool Pool, size, maxAttempts int) ([]string, error) {
	return drawDistinct(src, pool, size, maxAttempts, l.pick)
}

// Weights returns the weight of every index for a pool of n items.
func (l Linear) Weights(n int) []uint64 {
	w := make([]uint64, n)
	for i := range w {
		if l.Direction == Back {
			w[i] = uint64(i + 1)
		} else {
			w[i] = uint64(n - i)
		}
	}
	return w
}

// pick maps a uniform draw over the triangular total onto an index using the
// closed form of the cumulative weights.
func (l Linear) pick(src *Source, n int) int {
	total := uint64(n) * uint64(n+1) / 2
	r := src.Uint64N(total)
	size := uint64(n)
	return sort.Search(n, func(i int) bool {
		k := uint64(i) + 1
		var cum uint64
		if l.Direction == Back {
			cum = k * (k + 1) / 2
		} else {
			cum = k*size - k*(k-1)/2
		}
		return cum > r
	})
}

type pickFunc func(src *Source, n int) int

func uniformPick(src *Source, n int) int {
	return src.IntN(n)
}

func drawMany(src *Source, pool Pool, size int, pick pickFunc) []string {
	out := make([]string, 0, size)
	for range size {
		out = append(out, pool.At(pick(src, pool.Len())))
	}
	return out
}

// drawDistinct keeps drawing single items until size distinct values have
// been collected. Distinctness is by value, so pools holding repeated strings
// can never yield more distinct items than they have unique values.
func drawDistinct(src *Source, pool Pool, size, maxAttempts int, pick pickFunc) ([]string, error) {
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	for attempts := 0; len(out) < size; attempts++ {
		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: collected %d of %d distinct items after %d draws",
				ErrExhaustedRetries, len(out), size, attempts)
		}
		item := pool.At(pick(src, pool.Len()))
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}
