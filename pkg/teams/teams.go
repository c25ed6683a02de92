package teams

import (
	"context"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// NewTeamNames returns a uniform generator over the team nouns.
func NewTeamNames(ctx context.Context, p dataset.Provider, opts ...sampler.Option) (*sampler.Generator, error) {
	items, err := p.Load(ctx, dataset.TeamNames, "")
	if err != nil {
		return nil, err
	}
	pool, err := sampler.NewPool(items)
	if err != nil {
		return nil, err
	}
	return sampler.New(pool, sampler.Uniform{}, opts...), nil
}
