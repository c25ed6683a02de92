// Package config loads generator settings from environment variables into
// tagged structs.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached by type name; ResetCache drops the cache, which tests
// use after changing the environment.
//
//	type LeagueConfig struct {
//		Geo    string `env:"LEAGUE_GEO" envDefault:"bigcities"`
//		Locale string `env:"LEAGUE_LOCALE" envDefault:"usa"`
//	}
//
//	var cfg LeagueConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A missing default .env file is not an error. Files passed explicitly to
// LoadEnv must exist.
package config
