// Package league assembles fictional sports leagues.
//
// A Composer combines a geography generator, the team nouns and the league
// and division labels into a three-level Hierarchy:
//
//	league -> division -> teams
//
// Every league has the same division names and every division has the same
// number of teams. A team name is "<place> <noun>", e.g. "Denver Otters".
// Places and nouns are drawn without replacement, so no place and no noun
// appears twice in a hierarchy.
//
//	c, err := league.Configure(ctx, dataset.Default(), geography.BigCities, "usa")
//	if err != nil {
//		return err
//	}
//	h, err := c.Generate(2, 2, 4)
//	leagues, divisions, teams := league.ExtractNames(h)
//
// NewFromEnv builds a Composer from LEAGUE_*, DATASET_* and LOG_* environment
// variables.
package league
