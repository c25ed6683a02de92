package cache_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/leaguegen/pkg/cache"
)

func TestLRU_GetPut(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, []string](2)
	c.Put("cities", []string{"Albany"})
	c.Put("states", []string{"Texas"})

	v, ok := c.Get("cities")
	assert.True(t, ok)
	assert.Equal(t, []string{"Albany"}, v)

	c.Put("states", []string{"Ohio"})
	v, ok = c.Get("states")
	assert.True(t, ok)
	assert.Equal(t, []string{"Ohio"}, v)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// touching "a" makes "b" the eviction candidate
	_, _ = c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_GetOrLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads once", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRU[string, int](4)
		calls := 0
		load := func() (int, error) {
			calls++
			return 42, nil
		}

		v, err := c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = c.GetOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRU[string, int](4)
		boom := errors.New("boom")

		_, err := c.GetOrLoad("k", func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := c.GetOrLoad("k", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("slow load does not block other keys", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRU[string, int](4)
		c.Put("ready", 1)

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			v, err := c.GetOrLoad("slow", func() (int, error) {
				close(started)
				<-release
				return 2, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 2, v)
		}()
		<-started

		v, ok := c.Get("ready")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		c.Put("other", 3)
		v, err := c.GetOrLoad("other", func() (int, error) { return 0, errors.New("unexpected load") })
		require.NoError(t, err)
		assert.Equal(t, 3, v)

		close(release)
		<-done
		v, ok = c.Get("slow")
		assert.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("concurrent callers", func(t *testing.T) {
		t.Parallel()
		c := cache.NewLRU[string, int](4)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.GetOrLoad("shared", func() (int, error) { return 1, nil })
				assert.NoError(t, err)
				assert.Equal(t, 1, v)
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, c.Len())
	})
}

func TestLRU_Clear(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int, string](10)
	for i := range 5 {
		c.Put(i, strconv.Itoa(i))
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestLRU_InvalidCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	assert.Panics(t, func() { cache.NewLRU[string, int](-1) })
}
