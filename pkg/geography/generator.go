package geography

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// Generator draws place names for one mode and locale.
type Generator struct {
	gen        *sampler.Generator
	mode       Mode
	locale     string
	localeName string
}

// New loads the place list for locale and prepares it for mode.
// Options are passed to the underlying sampler.
func New(ctx context.Context, p dataset.Provider, mode Mode, locale string, opts ...sampler.Option) (*Generator, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	locale = dataset.NormalizeLocale(locale)

	items, err := p.Load(ctx, mode.Category(), locale)
	if err != nil {
		return nil, err
	}
	full, err := sampler.NewPool(items)
	if err != nil {
		return nil, err
	}
	pool, strategy, err := mode.slice(full)
	if err != nil {
		return nil, fmt.Errorf("%s for %s: %w", mode, locale, err)
	}

	// the display name only decorates errors
	name, _ := p.LocaleName(ctx, locale)

	return &Generator{
		gen:        sampler.New(pool, strategy, opts...),
		mode:       mode,
		locale:     locale,
		localeName: name,
	}, nil
}

// Generate returns size distinct places.
func (g *Generator) Generate(size int) ([]string, error) {
	places, err := g.gen.Generate(size)
	return places, g.wrap(size, err)
}

// GenerateNonUnique returns size places that may repeat.
func (g *Generator) GenerateNonUnique(size int) ([]string, error) {
	places, err := g.gen.GenerateNonUnique(size)
	return places, g.wrap(size, err)
}

// Len returns the number of places the mode samples from.
func (g *Generator) Len() int { return g.gen.Len() }

// Mode returns the generator mode.
func (g *Generator) Mode() Mode { return g.mode }

// Locale returns the normalized locale code.
func (g *Generator) Locale() string { return g.locale }

// LocaleName returns the English name of the locale, or "" if unknown.
func (g *Generator) LocaleName() string { return g.localeName }

// Sampler exposes the underlying generator.
func (g *Generator) Sampler() *sampler.Generator { return g.gen }

// wrap adds pool context to size errors; other errors pass through.
func (g *Generator) wrap(size int, err error) error {
	if !errors.Is(err, sampler.ErrInvalidSize) {
		return err
	}
	return &GeographyError{
		Mode:       g.mode,
		Locale:     g.locale,
		LocaleName: g.localeName,
		Requested:  size,
		Available:  g.gen.Len(),
		Err:        err,
	}
}
