package dataset

import "context"

// Provider resolves a category (and locale, for localized categories) to an
// ordered list of non-empty, trimmed strings.
type Provider interface {
	// Load returns the entries of a category in file order.
	Load(ctx context.Context, category Category, locale string) ([]string, error)
	// Rows returns comma-separated rows of a category, each label trimmed
	// and title-cased.
	Rows(ctx context.Context, category Category) ([][]string, error)
	// Locales returns the sorted locale codes available for a category.
	Locales(ctx context.Context, category Category) ([]string, error)
	// LocaleName returns the English display name of a locale code.
	LocaleName(ctx context.Context, locale string) (string, error)
}

// Count returns the number of entries in a dataset.
func Count(ctx context.Context, p Provider, category Category, locale string) (int, error) {
	items, err := p.Load(ctx, category, locale)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
