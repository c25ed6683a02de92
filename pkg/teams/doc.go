// Package teams generates team nouns and league or division labels.
//
// Team nouns ("Otters", "Flying Scots") are drawn uniformly from the
// team_names dataset with a sampler.Generator.
//
// Labels come from the leagues_divisions dataset, where every row is a themed
// set of labels such as the NATO alphabet or gemstones. A request for n labels
// picks one row with at least n entries and returns its first n labels, so
// names produced together always share a theme:
//
//	leagues, err := teams.NewLeagueNames(ctx, dataset.Default())
//	if err != nil {
//		return err
//	}
//	names, err := leagues.Generate(2) // e.g. ["Alpha", "Bravo"]
package teams
