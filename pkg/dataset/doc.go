// Package dataset supplies the flat reference lists the generators sample
// from: cities and states per locale, team-name nouns, first and last names,
// and comma-separated league/division label sets.
//
// # Provider and Catalog
//
// Generators depend on the Provider interface only. Catalog is the provided
// implementation; it reads plain text files from a Source using this layout:
//
//	geography/<locale>.txt          cities, most populous first
//	geography/<locale>_states.txt   states or provinces, most populous first
//	geography/_ABBR_KEY             "<locale> <English name>" per line
//	team_names.txt                  team-name nouns
//	leagues_divisions.txt           comma-separated label sets
//	first_names.txt
//	last_names.txt
//
// Lines are trimmed and blank lines dropped. Label rows are split on commas
// and title-cased. Parsed files are kept in an LRU cache, so building many
// generators over the same catalog reads each file once.
//
// # Sources
//
//   - Embedded: the default dataset compiled into the binary.
//   - NewFSSource / NewDirSource: any fs.FS or a directory on disk.
//   - MemorySource and NewYAMLSource: in-memory files, optionally decoded from
//     a single YAML bundle.
//   - NewS3Source: objects in an S3 (or S3-compatible) bucket.
//   - NewRedisSource: string keys in Redis.
//
// Open picks a source from Config, whose fields are loadable from DATASET_*
// environment variables.
//
// # Locales
//
// Locale codes are case-insensitive and normalised to lower case. A locale
// is supported for a category when its file exists; anything else fails with
// a *LocaleError matching ErrLocaleNotSupported.
//
//	catalog := dataset.Default()
//	cities, err := catalog.Load(ctx, dataset.Cities, "usa")
//	name, _ := catalog.LocaleName(ctx, "USA") // "United States"
package dataset
