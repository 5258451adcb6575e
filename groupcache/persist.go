// File: groupcache/persist.go
// Binary persistence for the group cache, using msgpack's
// self-describing encoding rather than a hand-rolled binary layout.
package groupcache

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// wireEntry is the on-disk shape of one cache row: the packed key
// plus its resolution. msgpack encodes this far more compactly than
// JSON would for a table expected to hold millions of rows.
type wireEntry struct {
	Key     uint64
	OriginX int
	OriginY int
	ShapeID int
}

// Save writes the cache to path as a msgpack-encoded array of rows.
func (c *Cache) Save(path string) error {
	rows := make([]wireEntry, 0, len(c.m))
	for k, e := range c.m {
		rows = append(rows, wireEntry{Key: k, OriginX: e.OriginX, OriginY: e.OriginY, ShapeID: e.ShapeID})
	}
	data, err := msgpack.Marshal(rows)
	if err != nil {
		return fmt.Errorf("groupcache: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("groupcache: write %s: %w", path, err)
	}
	return nil
}

// Load reads a msgpack-encoded cache file written by Save.
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("groupcache: read %s: %w", path, err)
	}
	var rows []wireEntry
	if err := msgpack.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("groupcache: parse %s: %w", path, err)
	}
	c := New()
	for _, r := range rows {
		c.m[r.Key] = Entry{OriginX: r.OriginX, OriginY: r.OriginY, ShapeID: r.ShapeID}
	}
	return c, nil
}
