package dataset

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/leaguegen/pkg/redis"
)

// Source kinds accepted by Open.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceYAML     = "yaml"
	SourceS3       = "s3"
	SourceRedis    = "redis"
)

// Config selects and configures the dataset source.
type Config struct {
	Source      string       `env:"DATASET_SOURCE" envDefault:"embedded"`
	Dir         string       `env:"DATASET_DIR"`
	BundleFile  string       `env:"DATASET_BUNDLE"`
	CacheSize   int          `env:"DATASET_CACHE_SIZE" envDefault:"32"`
	S3          S3Config     `envPrefix:"DATASET_S3_"`
	RedisPrefix string       `env:"DATASET_REDIS_PREFIX" envDefault:"leaguegen:"`
	Redis       redis.Config `envPrefix:"DATASET_"`
}

// Open builds a catalog over the source described by cfg.
func Open(ctx context.Context, cfg Config, opts ...CatalogOption) (*Catalog, error) {
	src, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts = append([]CatalogOption{WithCacheSize(cfg.CacheSize)}, opts...)
	return NewCatalog(src, opts...), nil
}

func openSource(ctx context.Context, cfg Config) (Source, error) {
	switch cfg.Source {
	case "", SourceEmbedded:
		return Embedded(), nil
	case SourceDir:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("%w: dataset directory is required", ErrInvalidConfig)
		}
		return NewDirSource(cfg.Dir)
	case SourceYAML:
		if cfg.BundleFile == "" {
			return nil, fmt.Errorf("%w: bundle file is required", ErrInvalidConfig)
		}
		return OpenYAMLFile(cfg.BundleFile)
	case SourceS3:
		return NewS3Source(ctx, cfg.S3)
	case SourceRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisSource(client, cfg.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
