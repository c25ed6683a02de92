package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix is prepended to every dataset key.
const DefaultRedisPrefix = "leaguegen:"

const redisScanCount = 100

// globEscaper quotes the characters SCAN MATCH treats as patterns.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// RedisClient defines the commands used by RedisSource. *redis.Client
// satisfies it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// RedisSource reads dataset files stored as string values, one key per file:
// "<prefix>team_names.txt", "<prefix>geography/usa.txt", ...
type RedisSource struct {
	client RedisClient
	prefix string
}

// NewRedisSource creates a source. An empty prefix means DefaultRedisPrefix.
func NewRedisSource(client RedisClient, prefix string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, errors.Join(ErrSourceRead, err)
	}
	return data, nil
}

func (s *RedisSource) ListDir(ctx context.Context, dir string) ([]string, error) {
	keyPrefix := s.prefix + strings.Trim(dir, "/") + "/"
	match := globEscaper.Replace(keyPrefix) + "*"

	var (
		names  []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, redisScanCount).Result()
		if err != nil {
			return nil, errors.Join(ErrSourceRead, err)
		}
		for _, key := range keys {
			name, ok := strings.CutPrefix(key, keyPrefix)
			if ok && name != "" && !strings.Contains(name, "/") {
				names = append(names, name)
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dir)
	}
	// SCAN may return a key more than once
	slices.Sort(names)
	return slices.Compact(names), nil
}

// Close closes the client when it owns a connection.
func (s *RedisSource) Close() error {
	if closer, ok := s.client.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
