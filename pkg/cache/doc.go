// Package cache provides a small generic LRU cache used to keep parsed
// datasets in memory between generator constructions.
//
// The cache is safe for concurrent use. When it reaches capacity the least
// recently used entry is dropped. GetOrLoad fills missing entries through a
// loader callback; loader errors are returned to the caller and never cached,
// so a failed read is retried on the next call. The loader runs without the
// cache lock held; pair it with golang.org/x/sync/singleflight when each key
// must be loaded only once.
//
//	pools := cache.NewLRU[string, []string](32)
//	cities, err := pools.GetOrLoad("geography/usa.txt", func() ([]string, error) {
//		return readLines(ctx, "geography/usa.txt")
//	})
package cache
