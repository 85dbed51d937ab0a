package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zudevon/ez-dash/internal/model"
)

// DefaultRetention is how long a cached news batch stays valid.
const DefaultRetention = 10 * 24 * time.Hour

// Cache persists one JSON file per cached date so news batches survive
// process restarts. Weather and stock data are never cached here: they are
// expected to change within a day.
type Cache struct {
	dir       string
	retention time.Duration
	now       func() time.Time
}

type entry struct {
	CachedAt string           `json:"cached_at"`
	Date     string           `json:"date"`
	Data     []model.NewsItem `json:"data"`
}

func New(dir string, retention time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &Cache{dir: dir, retention: retention, now: time.Now}, nil
}

func (c *Cache) key(date string) string {
	sum := md5.Sum([]byte("news_" + date))
	return fmt.Sprintf("%x", sum)
}

func (c *Cache) path(date string) string {
	return filepath.Join(c.dir, c.key(date)+".json")
}

// Get returns the cached news batch for date. An entry that is expired,
// unreadable, or unparsable counts as a miss and its file is removed.
func (c *Cache) Get(date string) ([]model.NewsItem, bool) {
	path := c.path(date)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		slog.Warn("removing corrupt cache entry", "date", date, "error", err)
		os.Remove(path)
		return nil, false
	}

	if c.expired(e.CachedAt) {
		os.Remove(path)
		return nil, false
	}

	return e.Data, true
}

// Put stores a news batch for date, overwriting any prior entry.
func (c *Cache) Put(date string, items []model.NewsItem) error {
	e := entry{
		CachedAt: c.now().Format(time.RFC3339),
		Date:     date,
		Data:     items,
	}

	raw, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.path(date), raw, 0o644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}

// PurgeExpired removes every expired or corrupt entry and returns how many
// files were deleted.
func (c *Cache) PurgeExpired() int {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		slog.Error("error reading cache dir", "dir", c.dir, "error", err)
		return 0
	}

	removed := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		path := filepath.Join(c.dir, f.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var e entry
		if err := json.Unmarshal(raw, &e); err != nil || c.expired(e.CachedAt) {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}

	return removed
}

// ClearAll removes every cache file.
func (c *Cache) ClearAll() error {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading cache dir: %w", err)
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, f.Name())); err != nil {
			return fmt.Errorf("removing cache entry %s: %w", f.Name(), err)
		}
	}

	return nil
}

// expired treats an unparsable timestamp as expired.
func (c *Cache) expired(cachedAt string) bool {
	t, err := time.Parse(time.RFC3339, cachedAt)
	if err != nil {
		return true
	}
	return t.Before(c.now().Add(-c.retention))
}
