package teams

import (
	"context"
	"slices"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// Labels draws themed label sets for leagues or divisions.
type Labels struct {
	kind   string
	rows   [][]string
	maxLen int
	src    *sampler.Source
}

// Option configures Labels.
type Option func(*Labels)

// WithSource sets the random source used to pick a row.
func WithSource(src *sampler.Source) Option {
	return func(l *Labels) {
		if src != nil {
			l.src = src
		}
	}
}

// NewLeagueNames returns a generator of league names.
func NewLeagueNames(ctx context.Context, p dataset.Provider, opts ...Option) (*Labels, error) {
	return newLabels(ctx, p, "league_names", opts...)
}

// NewDivisionNames returns a generator of division names.
func NewDivisionNames(ctx context.Context, p dataset.Provider, opts ...Option) (*Labels, error) {
	return newLabels(ctx, p, "division_names", opts...)
}

func newLabels(ctx context.Context, p dataset.Provider, kind string, opts ...Option) (*Labels, error) {
	rows, err := p.Rows(ctx, dataset.LeaguesDivisions)
	if err != nil {
		return nil, err
	}
	l := &Labels{kind: kind, rows: rows, src: sampler.Default()}
	for _, row := range rows {
		l.maxLen = max(l.maxLen, len(row))
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// MaxLen returns the length of the longest row, the largest size Generate
// accepts.
func (l *Labels) MaxLen() int { return l.maxLen }

// Rows returns a copy of the label rows.
func (l *Labels) Rows() [][]string {
	rows := make([][]string, len(l.rows))
	for i, row := range l.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Generate returns the first size labels of a row chosen uniformly among the
// rows that hold at least size labels.
func (l *Labels) Generate(size int) ([]string, error) {
	if size < 1 || size > l.maxLen {
		return nil, &sampler.SizeError{Op: l.kind, Size: size, Min: 1, Max: l.maxLen, Available: l.maxLen}
	}
	var candidates [][]string
	for _, row := range l.rows {
		if len(row) >= size {
			candidates = append(candidates, row)
		}
	}
	row := candidates[l.src.IntN(len(candidates))]
	return slices.Clone(row[:size]), nil
}
