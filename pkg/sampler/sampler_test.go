package sampler_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

func randomData(t *testing.T, size int) []string {
	t.Helper()
	data := make([]string, size)
	for i := range data {
		data[i] = uuid.NewString()
	}
	return data
}

func colors() []string {
	return []string{"blue", "red", "green", "yellow", "purple"}
}

func frequency(samples []string, item string) float64 {
	count := 0
	for _, s := range samples {
		if s == item {
			count++
		}
	}
	return float64(count) / float64(len(samples))
}

func strategies() map[string]sampler.Strategy {
	return map[string]sampler.Strategy{
		"uniform": sampler.Uniform{},
		"front":   sampler.Linear{Direction: sampler.Front},
		"back":    sampler.Linear{Direction: sampler.Back},
	}
}

func TestPool(t *testing.T) {
	t.Parallel()

	t.Run("copies input", func(t *testing.T) {
		t.Parallel()
		data := colors()
		pool, err := sampler.NewPool(data)
		require.NoError(t, err)

		data[0] = "changed"
		assert.Equal(t, "blue", pool.At(0))
		assert.Equal(t, 5, pool.Len())
		assert.Equal(t, colors(), pool.Items())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := sampler.NewPool(nil)
		assert.ErrorIs(t, err, sampler.ErrEmptyPool)
	})

	t.Run("head and tail", func(t *testing.T) {
		t.Parallel()
		pool, err := sampler.NewPool(colors())
		require.NoError(t, err)

		head, err := pool.Head(2)
		require.NoError(t, err)
		assert.Equal(t, []string{"blue", "red"}, head.Items())

		tail, err := pool.Tail(2)
		require.NoError(t, err)
		assert.Equal(t, []string{"green", "yellow", "purple"}, tail.Items())

		_, err = pool.Head(0)
		assert.ErrorIs(t, err, sampler.ErrEmptyPool)
	})
}

func TestPoolOf(t *testing.T) {
	t.Parallel()

	t.Run("string slice", func(t *testing.T) {
		t.Parallel()
		pool, err := sampler.PoolOf(colors())
		require.NoError(t, err)
		assert.Equal(t, colors(), pool.Items())
	})

	t.Run("any slice of strings", func(t *testing.T) {
		t.Parallel()
		pool, err := sampler.PoolOf([]any{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, pool.Items())
	})

	t.Run("sequence", func(t *testing.T) {
		t.Parallel()
		pool, err := sampler.PoolOf(slices.Values(colors()))
		require.NoError(t, err)
		assert.Equal(t, colors(), pool.Items())
	})

	t.Run("not iterable", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{true, 42, "blue", []any{"a", 1}, map[string]int{"a": 1}} {
			_, err := sampler.PoolOf(v)
			assert.ErrorIs(t, err, sampler.ErrNotIterable, "value %v", v)
		}
	})
}

func TestGenerator_GenerateNonUnique(t *testing.T) {
	t.Parallel()

	data := randomData(t, 100)
	pool, err := sampler.NewPool(data)
	require.NoError(t, err)

	for name, strategy := range strategies() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			gen := sampler.New(pool, strategy, sampler.WithSource(sampler.NewSource(7)))

			for _, size := range []int{0, 1, 50, 100} {
				got, err := gen.GenerateNonUnique(size)
				require.NoError(t, err)
				assert.Len(t, got, size)
				for _, item := range got {
					assert.Contains(t, data, item)
				}
			}

			for _, size := range []int{-1, 101} {
				_, err := gen.GenerateNonUnique(size)
				assert.ErrorIs(t, err, sampler.ErrInvalidSize, "size %d", size)
			}
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	data := randomData(t, 100)
	pool, err := sampler.NewPool(data)
	require.NoError(t, err)

	for name, strategy := range strategies() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			gen := sampler.New(pool, strategy, sampler.WithSource(sampler.NewSource(11)))

			one, err := gen.Generate(1)
			require.NoError(t, err)
			require.Len(t, one, 1)
			assert.Contains(t, data, one[0])

			half, err := gen.Generate(50)
			require.NoError(t, err)
			assert.Len(t, half, 50)
			seen := make(map[string]struct{})
			for _, item := range half {
				assert.Contains(t, data, item)
				seen[item] = struct{}{}
			}
			assert.Len(t, seen, 50, "items must be pairwise distinct")

			all, err := gen.Generate(100)
			require.NoError(t, err)
			assert.ElementsMatch(t, data, all)

			for _, size := range []int{0, -3, 101} {
				_, err := gen.Generate(size)
				assert.ErrorIs(t, err, sampler.ErrInvalidSize, "size %d", size)
			}
		})
	}
}

func TestGenerator_LargePoolLimit(t *testing.T) {
	t.Parallel()

	pool, err := sampler.NewPool(randomData(t, 150))
	require.NoError(t, err)
	gen := sampler.New(pool, sampler.Uniform{}, sampler.WithSource(sampler.NewSource(3)))

	got, err := gen.Generate(100)
	require.NoError(t, err)
	assert.Len(t, got, 100)

	_, err = gen.Generate(101)
	require.ErrorIs(t, err, sampler.ErrInvalidSize)

	var sizeErr *sampler.SizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, 101, sizeErr.Size)
	assert.Equal(t, 100, sizeErr.Max)
	assert.Equal(t, 150, sizeErr.Available)
	assert.NotEmpty(t, sizeErr.Reason)

	// The limit does not apply to draws with replacement.
	many, err := gen.GenerateNonUnique(150)
	require.NoError(t, err)
	assert.Len(t, many, 150)
}

func TestGenerator_ExhaustedRetries(t *testing.T) {
	t.Parallel()

	pool, err := sampler.NewPool([]string{"same", "same", "same"})
	require.NoError(t, err)
	gen := sampler.New(pool, sampler.Uniform{},
		sampler.WithSource(sampler.NewSource(1)),
		sampler.WithMaxAttempts(50),
	)

	_, err = gen.Generate(2)
	assert.ErrorIs(t, err, sampler.ErrExhaustedRetries)

	got, err := gen.Generate(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, got)
}

func TestGenerator_NilStrategyIsUniform(t *testing.T) {
	t.Parallel()

	pool, err := sampler.NewPool(colors())
	require.NoError(t, err)
	gen := sampler.New(pool, nil)
	assert.Equal(t, sampler.Uniform{}, gen.Strategy())
	assert.Same(t, sampler.Default(), gen.Source())
}

func TestBias(t *testing.T) {
	t.Parallel()

	pool, err := sampler.NewPool(colors())
	require.NoError(t, err)

	draw := func(t *testing.T, strategy sampler.Strategy, n int) []string {
		t.Helper()
		gen := sampler.New(pool, strategy, sampler.WithSource(sampler.NewSource(420)))
		samples := make([]string, 0, n)
		for range n {
			got, err := gen.Generate(1)
			require.NoError(t, err)
			samples = append(samples, got[0])
		}
		return samples
	}

	t.Run("uniform", func(t *testing.T) {
		t.Parallel()
		samples := draw(t, sampler.Uniform{}, 1000)
		assert.Less(t, frequency(samples, "red"), 0.5)
	})

	t.Run("front", func(t *testing.T) {
		t.Parallel()
		samples := draw(t, sampler.Linear{Direction: sampler.Front}, 10000)

		blue := frequency(samples, "blue")
		assert.Greater(t, blue, 0.30)
		assert.Less(t, blue, 0.37)

		purple := frequency(samples, "purple")
		assert.Greater(t, purple, 0.04)
		assert.Less(t, purple, 0.09)

		assert.Greater(t, blue, purple)
		assert.InDelta(t, 5.0, blue/purple, 1.5)
	})

	t.Run("back", func(t *testing.T) {
		t.Parallel()
		samples := draw(t, sampler.Linear{Direction: sampler.Back}, 10000)

		purple := frequency(samples, "purple")
		assert.Greater(t, purple, 0.30)
		assert.Less(t, purple, 0.37)

		blue := frequency(samples, "blue")
		assert.Greater(t, blue, 0.04)
		assert.Less(t, blue, 0.09)
	})

	t.Run("with replacement", func(t *testing.T) {
		t.Parallel()
		gen := sampler.New(pool, sampler.Linear{Direction: sampler.Front}, sampler.WithSource(sampler.NewSource(99)))
		samples, err := gen.GenerateNonUnique(5)
		require.NoError(t, err)
		assert.Len(t, samples, 5)

		counts := make(map[string]int)
		for range 2000 {
			s, err := gen.GenerateNonUnique(5)
			require.NoError(t, err)
			for _, item := range s {
				counts[item]++
			}
		}
		assert.Greater(t, counts["blue"], counts["green"])
		assert.Greater(t, counts["green"], counts["purple"])
	})
}

func TestLinear_Weights(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []uint64{5, 4, 3, 2, 1}, sampler.Linear{Direction: sampler.Front}.Weights(5))
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, sampler.Linear{Direction: sampler.Back}.Weights(5))
	assert.Equal(t, "front", sampler.Front.String())
	assert.Equal(t, "back", sampler.Back.String())
}

func TestDeterminism(t *testing.T) {
	pool, err := sampler.NewPool(colors())
	require.NoError(t, err)

	t.Run("isolated source", func(t *testing.T) {
		first, err := sampler.New(pool, sampler.Linear{}, sampler.WithSource(sampler.NewSource(420))).Generate(5)
		require.NoError(t, err)
		second, err := sampler.New(pool, sampler.Linear{}, sampler.WithSource(sampler.NewSource(420))).Generate(5)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.ElementsMatch(t, colors(), first)
	})

	t.Run("shared source", func(t *testing.T) {
		gen := sampler.New(pool, sampler.Linear{})

		sampler.Seed(420)
		first, err := gen.Generate(5)
		require.NoError(t, err)

		sampler.Seed(420)
		second, err := gen.Generate(5)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("reseeded source", func(t *testing.T) {
		src := sampler.NewSource(1)
		gen := sampler.New(pool, sampler.Uniform{}, sampler.WithSource(src))

		src.Seed(5)
		first, err := gen.GenerateNonUnique(5)
		require.NoError(t, err)
		src.Seed(5)
		second, err := gen.GenerateNonUnique(5)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestSizeError(t *testing.T) {
	t.Parallel()

	err := sampler.CheckUnique(0, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, sampler.ErrInvalidSize)
	assert.NotErrorIs(t, err, sampler.ErrExhaustedRetries)
	assert.Contains(t, err.Error(), "size 0 out of range [1, 5]")

	assert.NoError(t, sampler.CheckUnique(5, 5))
	assert.NoError(t, sampler.CheckUnique(66, 100))
}

func TestSource_Shuffle(t *testing.T) {
	t.Parallel()

	items := colors()
	sampler.NewSource(8).Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.ElementsMatch(t, colors(), items)

	set := make(map[int]bool)
	src := sampler.NewSource(8)
	for range 200 {
		set[src.IntN(3)] = true
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, slices.Collect(maps.Keys(set)))
}
