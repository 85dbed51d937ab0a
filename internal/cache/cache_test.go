package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/zudevon/ez-dash/internal/model"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), DefaultRetention)
	assert.Equal(t, nil, err)
	return c
}

func sampleItems() []model.NewsItem {
	return []model.NewsItem{
		{
			Headline:      "Apple announces new plant in France",
			Description:   "",
			URL:           "https://example.com/apple-france",
			Source:        "Example News",
			Location:      "Paris",
			PublishedDate: "2024-01-01T09:00:00Z",
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)

	err := c.Put("2024-01-01", sampleItems())
	assert.Equal(t, nil, err)

	got, ok := c.Get("2024-01-01")
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Apple announces new plant in France", got[0].Headline)
	assert.Equal(t, "Paris", got[0].Location)
}

func TestCacheMissOnUnknownDate(t *testing.T) {
	c := newTestCache(t)

	_, ok := c.Get("2024-01-01")
	assert.Equal(t, false, ok)
}

func TestCacheExpiryDeletesEntry(t *testing.T) {
	c := newTestCache(t)

	err := c.Put("2024-01-01", sampleItems())
	assert.Equal(t, nil, err)

	// Advance the clock past the retention window.
	c.now = func() time.Time { return time.Now().Add(11 * 24 * time.Hour) }

	_, ok := c.Get("2024-01-01")
	assert.Equal(t, false, ok)

	_, err = os.Stat(c.path("2024-01-01"))
	assert.Equal(t, true, os.IsNotExist(err))
}

func TestCacheCorruptEntryIsMissAndRemoved(t *testing.T) {
	c := newTestCache(t)

	err := os.WriteFile(c.path("2024-01-01"), []byte("{not json"), 0o644)
	assert.Equal(t, nil, err)

	_, ok := c.Get("2024-01-01")
	assert.Equal(t, false, ok)

	_, err = os.Stat(c.path("2024-01-01"))
	assert.Equal(t, true, os.IsNotExist(err))
}

func TestCachePutOverwrites(t *testing.T) {
	c := newTestCache(t)

	assert.Equal(t, nil, c.Put("2024-01-01", sampleItems()))
	assert.Equal(t, nil, c.Put("2024-01-01", []model.NewsItem{{Headline: "Replaced"}}))

	got, ok := c.Get("2024-01-01")
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Replaced", got[0].Headline)
}

func TestPurgeExpired(t *testing.T) {
	c := newTestCache(t)

	assert.Equal(t, nil, c.Put("2024-01-01", sampleItems()))
	assert.Equal(t, nil, c.Put("2024-01-02", sampleItems()))
	assert.Equal(t, nil, os.WriteFile(filepath.Join(c.dir, "corrupt.json"), []byte("??"), 0o644))

	removed := c.PurgeExpired()
	assert.Equal(t, 1, removed) // only the corrupt file

	c.now = func() time.Time { return time.Now().Add(11 * 24 * time.Hour) }
	removed = c.PurgeExpired()
	assert.Equal(t, 2, removed)
}

func TestClearAll(t *testing.T) {
	c := newTestCache(t)

	assert.Equal(t, nil, c.Put("2024-01-01", sampleItems()))
	assert.Equal(t, nil, c.ClearAll())

	_, ok := c.Get("2024-01-01")
	assert.Equal(t, false, ok)
}
