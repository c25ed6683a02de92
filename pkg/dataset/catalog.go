package dataset

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/leaguegen/pkg/cache"
	"github.com/dmitrymomot/leaguegen/pkg/logger"
)

// DefaultCacheSize is the number of parsed files a Catalog keeps.
const DefaultCacheSize = 32

// Catalog implements Provider on top of a Source.
// It is safe for concurrent use.
type Catalog struct {
	src   Source
	files *cache.LRU[string, []string]
	loads singleflight.Group
	log   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	cacheSize int
	log       *slog.Logger
}

// WithCacheSize sets how many parsed files are kept. Values <= 0 are ignored.
func WithCacheSize(n int) CatalogOption {
	return func(o *catalogOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithLogger sets the logger used to trace file reads.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// NewCatalog creates a catalog reading from src.
func NewCatalog(src Source, opts ...CatalogOption) *Catalog {
	o := &catalogOptions{cacheSize: DefaultCacheSize, log: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return &Catalog{
		src:   src,
		files: cache.NewLRU[string, []string](o.cacheSize),
		log:   o.log.With(logger.Component("dataset")),
	}
}

// Default returns a catalog over the embedded dataset.
func Default(opts ...CatalogOption) *Catalog {
	return NewCatalog(Embedded(), opts...)
}

// Source returns the underlying source.
func (c *Catalog) Source() Source { return c.src }

// Purge drops every cached file so the next read hits the source again.
func (c *Catalog) Purge() { c.files.Clear() }

// Close releases the source if it holds resources.
func (c *Catalog) Close() error {
	if closer, ok := c.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Catalog) Load(ctx context.Context, category Category, locale string) ([]string, error) {
	name, err := c.resolve(ctx, category, locale)
	if err != nil {
		return nil, err
	}
	lines, err := c.lines(ctx, name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(lines), nil
}

func (c *Catalog) Rows(ctx context.Context, category Category) ([][]string, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if category.Localized() {
		return nil, fmt.Errorf("%w: %s rows are not supported", ErrUnknownCategory, category)
	}
	lines, err := c.lines(ctx, category.Path(""))
	if err != nil {
		return nil, err
	}

	title := cases.Title(language.English)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		var row []string
		for label := range strings.SplitSeq(line, ",") {
			if label = strings.TrimSpace(label); label != "" {
				row = append(row, title.String(label))
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, category)
	}
	return rows, nil
}

func (c *Catalog) Locales(ctx context.Context, category Category) ([]string, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !category.Localized() {
		return nil, nil
	}
	names, err := c.cached("dir:"+GeographyDir, func() ([]string, error) {
		return c.src.ListDir(ctx, GeographyDir)
	})
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, name := range names {
		if code, ok := category.localeFromFile(name); ok {
			codes = append(codes, NormalizeLocale(code))
		}
	}
	slices.Sort(codes)
	return slices.Compact(codes), nil
}

func (c *Catalog) LocaleName(ctx context.Context, locale string) (string, error) {
	lines, err := c.lines(ctx, LocaleKeyFile)
	if err != nil {
		return "", err
	}
	code := NormalizeLocale(locale)
	for _, line := range lines {
		key, name, _ := strings.Cut(line, " ")
		if strings.EqualFold(key, code) {
			return strings.TrimSpace(name), nil
		}
	}
	return "", &LocaleError{Locale: code}
}

// resolve maps a category and locale to a file name, checking the locale
// against the files present in the source.
func (c *Catalog) resolve(ctx context.Context, category Category, locale string) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !category.Localized() {
		return category.Path(""), nil
	}
	code := NormalizeLocale(locale)
	known, err := c.Locales(ctx, category)
	if err != nil {
		return "", err
	}
	if _, found := slices.BinarySearch(known, code); !found {
		c.log.DebugContext(ctx, "locale not supported",
			logger.Category(string(category)),
			logger.Locale(code),
			slog.Any("known", known),
		)
		return "", &LocaleError{Category: category, Locale: code}
	}
	return category.Path(code), nil
}

// lines returns the cached, parsed content of a file.
func (c *Catalog) lines(ctx context.Context, name string) ([]string, error) {
	return c.cached(name, func() ([]string, error) {
		data, err := c.src.ReadFile(ctx, name)
		if err != nil {
			return nil, err
		}
		lines, err := parseLines(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(lines) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, name)
		}
		c.log.DebugContext(ctx, "dataset loaded", slog.String("file", name), logger.Size(len(lines)))
		return lines, nil
	})
}

// cached serves key from the LRU. Misses are loaded once per key: concurrent
// callers for the same key share one load, other keys are not blocked.
func (c *Catalog) cached(key string, load func() ([]string, error)) ([]string, error) {
	if v, ok := c.files.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.loads.Do(key, func() (any, error) {
		return c.files.GetOrLoad(key, load)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// MaxLineSize is the longest dataset line accepted, in bytes.
const MaxLineSize = 1 << 20

func parseLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrSourceRead, err)
	}
	return lines, nil
}
