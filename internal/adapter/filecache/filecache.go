// Package filecache provides a read-through file cache backed by
// dgraph-io/ristretto. The baseline measurement path reads the same fixture
// files once per scenario; the cache keeps repeated reads out of the timings.
package filecache

import (
	"os"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is an in-process byte cache keyed by file path.
type Cache struct {
	c *ristretto.Cache[string, []byte]
}

// New creates a ristretto-backed file cache. maxCostBytes is the maximum
// total size of cached file contents in bytes.
func New(maxCostBytes int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxCostBytes / 100 * 10, // ~10x expected items
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// ReadFile returns the contents of path, from cache when possible.
func (c *Cache) ReadFile(path string) ([]byte, error) {
	if data, ok := c.c.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: fixture paths come from scenario config
	if err != nil {
		return nil, err
	}

	c.c.Set(path, data, int64(len(data)))
	return data, nil
}

// Close shuts down the cache and releases resources.
func (c *Cache) Close() {
	c.c.Close()
}
