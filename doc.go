// Package leaguegen generates fictional sports leagues.
//
// The module is a set of small packages under pkg/:
//
//	sampler    uniform and linearly biased sampling with size checks
//	dataset    reference lists (places, team nouns, names, labels) from
//	           embedded data, a directory, a YAML bundle, S3 or Redis
//	geography  place generators (cities, big cities, small towns, states...)
//	teams      team nouns and themed league/division labels
//	players    person names with optional alliteration
//	league     the league -> division -> team composer
//
// Quick start:
//
//	c, err := league.Configure(ctx, dataset.Default(), geography.BigCities, "usa")
//	if err != nil {
//		return err
//	}
//	h, err := c.Generate(2, 2, 4)
package leaguegen
