package sampler

import (
	"fmt"
	"iter"
	"slices"
)

// Pool is an ordered, read-only collection of candidate strings.
// Order matters for biased strategies: index 0 is the front.
type Pool struct {
	items []string
}

// NewPool copies items into a new pool. Empty input yields ErrEmptyPool.
func NewPool(items []string) (Pool, error) {
	if len(items) == 0 {
		return Pool{}, ErrEmptyPool
	}
	return Pool{items: slices.Clone(items)}, nil
}

// PoolOf builds a pool from an arbitrary value. Supported inputs are []string,
// []any holding only strings, and iter.Seq[string]; anything else yields
// ErrNotIterable.
func PoolOf(v any) (Pool, error) {
	switch data := v.(type) {
	case []string:
		return NewPool(data)
	case iter.Seq[string]:
		return NewPool(slices.Collect(data))
	case []any:
		items := make([]string, 0, len(data))
		for i, item := range data {
			s, ok := item.(string)
			if !ok {
				return Pool{}, fmt.Errorf("%w: element %d has type %T", ErrNotIterable, i, item)
			}
			items = append(items, s)
		}
		return NewPool(items)
	default:
		return Pool{}, fmt.Errorf("%w: got %T", ErrNotIterable, v)
	}
}

// Len returns the number of items in the pool.
func (p Pool) Len() int {
	return len(p.items)
}

// At returns the item at index i.
func (p Pool) At(i int) string {
	return p.items[i]
}

// Items returns a copy of the pool contents.
func (p Pool) Items() []string {
	return slices.Clone(p.items)
}

// Head returns a pool made of the first n items.
func (p Pool) Head(n int) (Pool, error) {
	n = min(max(n, 0), len(p.items))
	return NewPool(p.items[:n])
}

// Tail returns a pool made of the items from index from onwards.
func (p Pool) Tail(from int) (Pool, error) {
	from = min(max(from, 0), len(p.items))
	return NewPool(p.items[from:])
}
