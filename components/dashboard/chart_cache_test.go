package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartCacheStoresEntry(t *testing.T) {
	cache := NewChartCache(time.Minute)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	first, err := cache.GetOrRender("usage", render)
	require.NoError(t, err)
	second, err := cache.GetOrRender("usage", render)
	require.NoError(t, err)

	assert.Equal(t, "html", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(time.Minute)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }
	calls := 0
	render := func() (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := cache.GetOrRender("usage", render)
	require.NoError(t, err)
	clock = clock.Add(2 * time.Minute)
	_, err = cache.GetOrRender("usage", render)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestChartCacheDoesNotStoreErrors(t *testing.T) {
	cache := NewChartCache(time.Minute)
	_, err := cache.GetOrRender("usage", func() (string, error) { return "", errors.New("boom") })
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestChartCacheDisabledWithZeroTTL(t *testing.T) {
	cache := NewChartCache(0)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}
	_, _ = cache.GetOrRender("usage", render)
	_, _ = cache.GetOrRender("usage", render)
	assert.Equal(t, 2, calls)
}

func TestChartCachePurge(t *testing.T) {
	cache := NewChartCache(time.Minute)
	_, err := cache.GetOrRender("usage", func() (string, error) { return "html", nil })
	require.NoError(t, err)
	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}
