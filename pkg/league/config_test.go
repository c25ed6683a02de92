package league_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/leaguegen/pkg/config"
	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/geography"
	"github.com/dmitrymomot/leaguegen/pkg/league"
)

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	cfg := league.Config{
		Geo:              "SmallTowns",
		Locale:           "can",
		Leagues:          1,
		Divisions:        2,
		TeamsPerDivision: 3,
		Seed:             9,
	}
	c, err := league.New(ctx, cfg, dataset.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, geography.SmallTowns, c.Places().Mode())
	assert.Equal(t, "can", c.Places().Locale())
	assert.Equal(t, league.Counts{Leagues: 1, Divisions: 2, TeamsPerDivision: 3}, c.Counts())

	h, err := c.GenerateDefault()
	require.NoError(t, err)
	assert.Equal(t, 6, h.TeamCount())

	again, err := league.New(ctx, cfg, dataset.Config{})
	require.NoError(t, err)
	h2, err := again.GenerateDefault()
	require.NoError(t, err)
	assert.Equal(t, h, h2, "a fixed seed reproduces the hierarchy")
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	valid := league.Config{Geo: "cities", Locale: "usa", Leagues: 2, Divisions: 2, TeamsPerDivision: 4}

	cfg := valid
	cfg.Geo = "oceans"
	_, err := league.New(ctx, cfg, dataset.Config{})
	require.ErrorIs(t, err, geography.ErrInvalidMode)

	cfg = valid
	cfg.TeamsPerDivision = 0
	_, err = league.New(ctx, cfg, dataset.Config{})
	require.ErrorIs(t, err, league.ErrInvalidComposition)

	_, err = league.New(ctx, valid, dataset.Config{Source: "ftp"})
	require.ErrorIs(t, err, dataset.ErrUnknownSource)

	cfg = valid
	cfg.Locale = "atlantis"
	_, err = league.New(ctx, cfg, dataset.Config{})
	require.ErrorIs(t, err, dataset.ErrLocaleNotSupported)
}

func TestNewFromEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("LEAGUE_GEO", "bigstates")
	t.Setenv("LEAGUE_LOCALE", "ger")
	t.Setenv("LEAGUE_COUNT", "1")
	t.Setenv("LEAGUE_DIVISIONS", "1")
	t.Setenv("LEAGUE_TEAMS_PER_DIVISION", "5")
	t.Setenv("LEAGUE_SEED", "77")
	t.Setenv("DATASET_SOURCE", "embedded")
	t.Setenv("LOG_LEVEL", "warn")

	c, err := league.NewFromEnv(t.Context())
	require.NoError(t, err)
	assert.Equal(t, geography.BigStates, c.Places().Mode())
	assert.Equal(t, 8, c.Places().Len())

	h, err := c.GenerateDefault()
	require.NoError(t, err)
	assert.Equal(t, 5, h.TeamCount())
}

func TestNewFromEnv_InvalidLogFormat(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := league.NewFromEnv(t.Context())
	assert.Error(t, err)
}
