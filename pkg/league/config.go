package league

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/leaguegen/pkg/config"
	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/geography"
	"github.com/dmitrymomot/leaguegen/pkg/logger"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// Config holds the environment settings of a Composer.
type Config struct {
	Geo              string `env:"LEAGUE_GEO" envDefault:"bigcities"`
	Locale           string `env:"LEAGUE_LOCALE" envDefault:"usa"`
	Leagues          int    `env:"LEAGUE_COUNT" envDefault:"2"`
	Divisions        int    `env:"LEAGUE_DIVISIONS" envDefault:"2"`
	TeamsPerDivision int    `env:"LEAGUE_TEAMS_PER_DIVISION" envDefault:"4"`
	Seed             uint64 `env:"LEAGUE_SEED"` // 0 draws from the shared source
	MaxAttempts      int    `env:"LEAGUE_MAX_ATTEMPTS" envDefault:"1000000"`
}

// Counts returns the hierarchy shape described by the config.
func (cfg Config) Counts() Counts {
	return Counts{Leagues: cfg.Leagues, Divisions: cfg.Divisions, TeamsPerDivision: cfg.TeamsPerDivision}
}

// New opens the dataset described by dsCfg and configures a composer from cfg.
// Options are applied after the ones derived from cfg.
func New(ctx context.Context, cfg Config, dsCfg dataset.Config, opts ...Option) (*Composer, error) {
	mode, err := geography.ParseMode(cfg.Geo)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg.Leagues, cfg.Divisions, cfg.TeamsPerDivision); err != nil {
		return nil, err
	}

	base := []Option{WithCounts(cfg.Counts()), WithMaxAttempts(cfg.MaxAttempts)}
	if cfg.Seed != 0 {
		base = append(base, WithSource(sampler.NewSource(cfg.Seed)))
	}
	opts = append(base, opts...)

	// resolve the logger first so the catalog logs through it as well
	probe := &Composer{log: logger.Discard()}
	for _, opt := range opts {
		opt(probe)
	}

	catalog, err := dataset.Open(ctx, dsCfg, dataset.WithLogger(probe.log))
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	c, err := Configure(ctx, catalog, mode, cfg.Locale, opts...)
	if err != nil {
		return nil, errors.Join(err, catalog.Close())
	}
	return c, nil
}

// NewFromEnv loads league, dataset and logger settings from the environment
// (and an optional .env file) and configures a composer.
func NewFromEnv(ctx context.Context, opts ...Option) (*Composer, error) {
	var (
		cfg    Config
		dsCfg  dataset.Config
		logCfg logger.Config
	)
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if err := config.Load(&dsCfg); err != nil {
		return nil, err
	}
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}
	log, err := logger.NewFromConfig(logCfg)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, dsCfg, append([]Option{WithLogger(log)}, opts...)...)
}
