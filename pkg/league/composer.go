package league

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/geography"
	"github.com/dmitrymomot/leaguegen/pkg/logger"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
	"github.com/dmitrymomot/leaguegen/pkg/teams"
)

// MaxLeaguesDivisions is the largest number of leagues or divisions a
// hierarchy may have.
const MaxLeaguesDivisions = 24

// Counts is the shape of a hierarchy.
type Counts struct {
	Leagues          int
	Divisions        int
	TeamsPerDivision int
}

// DefaultCounts is used by GenerateDefault unless WithCounts is given.
var DefaultCounts = Counts{Leagues: 2, Divisions: 2, TeamsPerDivision: 4}

// Composer generates league hierarchies. It is safe for concurrent use when
// its random source is.
type Composer struct {
	provider    dataset.Provider
	places      *geography.Generator
	nouns       *sampler.Generator
	leagues     *teams.Labels
	divisions   *teams.Labels
	src         *sampler.Source
	maxAttempts int
	counts      Counts
	log         *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSource makes every generator of the composer draw from src.
func WithSource(src *sampler.Source) Option {
	return func(c *Composer) {
		if src != nil {
			c.src = src
		}
	}
}

// WithMaxAttempts caps the rejection loops of the composer and its
// generators. Values <= 0 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *Composer) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithCounts sets the shape produced by GenerateDefault.
func WithCounts(counts Counts) Option {
	return func(c *Composer) {
		c.counts = counts
	}
}

// Configure loads every dataset the composer needs. The place names come
// from mode and locale.
func Configure(ctx context.Context, p dataset.Provider, mode geography.Mode, locale string, opts ...Option) (*Composer, error) {
	c := &Composer{
		provider:    p,
		src:         sampler.Default(),
		maxAttempts: sampler.DefaultMaxAttempts,
		counts:      DefaultCounts,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("league"))

	samplerOpts := []sampler.Option{sampler.WithSource(c.src), sampler.WithMaxAttempts(c.maxAttempts)}

	var err error
	if c.places, err = geography.New(ctx, p, mode, locale, samplerOpts...); err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}
	if c.nouns, err = teams.NewTeamNames(ctx, p, samplerOpts...); err != nil {
		return nil, fmt.Errorf("load team names: %w", err)
	}
	if c.leagues, err = teams.NewLeagueNames(ctx, p, teams.WithSource(c.src)); err != nil {
		return nil, fmt.Errorf("load league names: %w", err)
	}
	if c.divisions, err = teams.NewDivisionNames(ctx, p, teams.WithSource(c.src)); err != nil {
		return nil, fmt.Errorf("load division names: %w", err)
	}

	c.log.DebugContext(ctx, "composer configured",
		logger.GeoMode(mode.String()),
		logger.Locale(c.places.Locale()),
		logger.Size(c.places.Len()),
	)
	return c, nil
}

// Places returns the geography generator.
func (c *Composer) Places() *geography.Generator { return c.places }

// Counts returns the shape used by GenerateDefault.
func (c *Composer) Counts() Counts { return c.counts }

// Close releases the dataset provider if it holds resources.
func (c *Composer) Close() error {
	if closer, ok := c.provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// GenerateDefault generates a hierarchy with the configured counts.
func (c *Composer) GenerateDefault() (Hierarchy, error) {
	return c.Generate(c.counts.Leagues, c.counts.Divisions, c.counts.TeamsPerDivision)
}

// Generate builds nleagues leagues of ndivisions divisions, each holding
// teamsPerDivision teams. Zero leagues or divisions yield an empty hierarchy.
func (c *Composer) Generate(nleagues, ndivisions, teamsPerDivision int) (Hierarchy, error) {
	if err := validate(nleagues, ndivisions, teamsPerDivision); err != nil {
		return nil, err
	}
	// nothing to place
	if nleagues == 0 || ndivisions == 0 {
		return Hierarchy{}, nil
	}

	leagueNames, err := c.leagues.Generate(nleagues)
	if err != nil {
		return nil, fmt.Errorf("league names: %w", err)
	}
	divisionNames, err := c.divisionNames(leagueNames, ndivisions)
	if err != nil {
		return nil, err
	}

	total := nleagues * ndivisions * teamsPerDivision
	places, err := c.places.Generate(total)
	if err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	nouns, err := c.nouns.Generate(total)
	if err != nil {
		return nil, fmt.Errorf("team names: %w", err)
	}
	c.shuffle(places)
	c.shuffle(nouns)

	slices.Sort(leagueNames)
	slices.Sort(divisionNames)

	h := make(Hierarchy, nleagues)
	for _, league := range leagueNames {
		divisions := make(map[string][]string, ndivisions)
		for _, division := range divisionNames {
			roster := make([]string, teamsPerDivision)
			for i := range roster {
				roster[i] = places[i] + " " + nouns[i]
			}
			places, nouns = places[teamsPerDivision:], nouns[teamsPerDivision:]
			divisions[division] = roster
		}
		h[league] = divisions
	}

	c.log.Debug("league generated",
		slog.Int("leagues", nleagues),
		slog.Int("divisions", ndivisions),
		logger.Size(total),
	)
	return h, nil
}

// divisionNames draws division labels until none of them is also a league
// name.
func (c *Composer) divisionNames(leagueNames []string, ndivisions int) ([]string, error) {
	for attempt := range c.maxAttempts {
		names, err := c.divisions.Generate(ndivisions)
		if err != nil {
			return nil, fmt.Errorf("division names: %w", err)
		}
		if !slices.ContainsFunc(names, func(n string) bool { return slices.Contains(leagueNames, n) }) {
			if attempt > 0 {
				c.log.Debug("division names redrawn", logger.RetryCount(attempt))
			}
			return names, nil
		}
	}
	err := fmt.Errorf("division names disjoint from %v: %w", leagueNames, sampler.ErrExhaustedRetries)
	c.log.Warn("division names exhausted", logger.Error(err), logger.RetryCount(c.maxAttempts))
	return nil, err
}

// shuffle sorts items, then shuffles them with the composer's source.
func (c *Composer) shuffle(items []string) {
	slices.Sort(items)
	c.src.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func validate(nleagues, ndivisions, teamsPerDivision int) error {
	var reason string
	switch {
	case nleagues < 0 || nleagues > MaxLeaguesDivisions:
		reason = fmt.Sprintf("leagues must be in [0, %d]", MaxLeaguesDivisions)
	case ndivisions < 0 || ndivisions > MaxLeaguesDivisions:
		reason = fmt.Sprintf("divisions must be in [0, %d]", MaxLeaguesDivisions)
	case teamsPerDivision < 1:
		reason = "at least one team per division is required"
	default:
		return nil
	}
	return &CompositionError{
		Leagues:          nleagues,
		Divisions:        ndivisions,
		TeamsPerDivision: teamsPerDivision,
		Reason:           reason,
	}
}
