package players

import (
	"context"
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

const (
	// DefaultAlliterationRate is the share of alliterative names.
	DefaultAlliterationRate = 0.1

	// DefaultMaxRedraws caps the last-name redraws of one alliterative name.
	DefaultMaxRedraws = 10_000
)

// NewFirstNames returns a uniform generator over first names.
func NewFirstNames(ctx context.Context, p dataset.Provider, opts ...sampler.Option) (*sampler.Generator, error) {
	return newUniform(ctx, p, dataset.FirstNames, opts...)
}

// NewLastNames returns a uniform generator over last names.
func NewLastNames(ctx context.Context, p dataset.Provider, opts ...sampler.Option) (*sampler.Generator, error) {
	return newUniform(ctx, p, dataset.LastNames, opts...)
}

func newUniform(ctx context.Context, p dataset.Provider, c dataset.Category, opts ...sampler.Option) (*sampler.Generator, error) {
	items, err := p.Load(ctx, c, "")
	if err != nil {
		return nil, err
	}
	pool, err := sampler.NewPool(items)
	if err != nil {
		return nil, err
	}
	return sampler.New(pool, sampler.Uniform{}, opts...), nil
}

// Names composes full names from a first and a last name generator.
type Names struct {
	first      *sampler.Generator
	last       *sampler.Generator
	src        *sampler.Source
	maxRedraws int
}

// Option configures Names.
type Option func(*Names)

// WithSource sets the random source for the alliteration decision and for
// both name generators.
func WithSource(src *sampler.Source) Option {
	return func(n *Names) {
		if src != nil {
			n.src = src
		}
	}
}

// WithMaxRedraws overrides DefaultMaxRedraws. Values <= 0 are ignored.
func WithMaxRedraws(limit int) Option {
	return func(n *Names) {
		if limit > 0 {
			n.maxRedraws = limit
		}
	}
}

// NewNames loads both name lists from p.
func NewNames(ctx context.Context, p dataset.Provider, opts ...Option) (*Names, error) {
	n := &Names{src: sampler.Default(), maxRedraws: DefaultMaxRedraws}
	for _, opt := range opts {
		opt(n)
	}

	var err error
	if n.first, err = NewFirstNames(ctx, p, sampler.WithSource(n.src)); err != nil {
		return nil, err
	}
	if n.last, err = NewLastNames(ctx, p, sampler.WithSource(n.src)); err != nil {
		return nil, err
	}
	return n, nil
}

// Generate returns size full names "First Last". Names may repeat.
func (n *Names) Generate(size int, alliterationRate float64) ([]string, error) {
	if size < 1 {
		return nil, &sampler.SizeError{
			Op: "names", Size: size, Min: 1, Max: math.MaxInt, Available: n.first.Len(),
			Reason: "at least one name must be requested",
		}
	}

	names := make([]string, 0, size)
	for range size {
		alliterate := n.src.Float64() < alliterationRate
		first, err := n.draw(n.first)
		if err != nil {
			return nil, err
		}
		last, err := n.draw(n.last)
		if err != nil {
			return nil, err
		}
		if alliterate {
			if last, err = n.alliterate(first, last); err != nil {
				return nil, err
			}
		}
		names = append(names, first+" "+last)
	}
	return names, nil
}

func (n *Names) alliterate(first, last string) (string, error) {
	want := initial(first)
	for range n.maxRedraws {
		if initial(last) == want {
			return last, nil
		}
		var err error
		if last, err = n.draw(n.last); err != nil {
			return "", err
		}
	}
	if initial(last) == want {
		return last, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoAlliteration, first)
}

func (n *Names) draw(g *sampler.Generator) (string, error) {
	items, err := g.GenerateNonUnique(1)
	if err != nil {
		return "", err
	}
	return items[0], nil
}

// initial returns the upper-cased first rune of s.
func initial(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToUpper(r)
}
