package md2site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// AssetCache is a read-through cache of asset file contents, safe for
// concurrent use. Entries live until Clear is called.
type AssetCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewAssetCache returns an empty cache.
func NewAssetCache() *AssetCache {
	return &AssetCache{entries: make(map[string][]byte)}
}

// Load returns the content of path, reading from disk on first access.
func (c *AssetCache) Load(path string) ([]byte, error) {
	c.mu.RLock()
	data, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetCopy, err)
	}

	c.mu.Lock()
	c.entries[path] = data
	c.mu.Unlock()
	return data, nil
}

// IsCached reports whether path has been loaded.
func (c *AssetCache) IsCached(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[path]
	return ok
}

// CachedPaths returns the cached paths in sorted order.
func (c *AssetCache) CachedPaths() []string {
	c.mu.RLock()
	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	c.mu.RUnlock()
	sort.Strings(paths)
	return paths
}

// Clear drops every cached entry.
func (c *AssetCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]byte)
	c.mu.Unlock()
}

// CopyAssets copies the regular files found directly under srcDir into
// dstDir, reading through the cache. Subdirectories are skipped.
func (c *AssetCache) CopyAssets(srcDir, dstDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetDir, err)
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetCopy, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := c.Load(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return err
		}
		dst := filepath.Join(dstDir, entry.Name())
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrAssetCopy, err)
		}
	}
	return nil
}
