package attr

import (
	"log/slog"
	"slices"

	"github.com/udisondev/oakbuffs/internal/host"
)

// Cache remembers the first observed value of every attribute touched
// this session. Entries are written once and only dropped by Reset.
type Cache struct {
	dir   host.Directory
	bases map[Ref]float64
	order []Ref
}

// NewCache creates an empty baseline cache reading through dir.
func NewCache(dir host.Directory) *Cache {
	return &Cache{
		dir:   dir,
		bases: make(map[Ref]float64),
	}
}

// Capture returns the cached baseline for ref, reading the live value if
// none is stored yet. A failed read stores nothing and returns false.
func (c *Cache) Capture(ref Ref) (float64, bool) {
	if base, ok := c.bases[ref]; ok {
		return base, true
	}

	v, err := c.dir.Value(ref.Target, ref.Handle)
	if err != nil {
		slog.Debug("baseline read failed",
			"target", ref.Target,
			"handle", ref.Handle,
			"err", err)
		return 0, false
	}

	c.bases[ref] = v
	c.order = append(c.order, ref)
	return v, true
}

// store records v as the baseline for ref unless one is already cached.
func (c *Cache) store(ref Ref, v float64) {
	if _, ok := c.bases[ref]; ok {
		return
	}
	c.bases[ref] = v
	c.order = append(c.order, ref)
}

// forget drops the baseline for ref.
func (c *Cache) forget(ref Ref) {
	if _, ok := c.bases[ref]; !ok {
		return
	}
	delete(c.bases, ref)
	c.order = slices.DeleteFunc(c.order, func(r Ref) bool { return r == ref })
}

// Baseline returns the stored baseline without touching the live entity.
func (c *Cache) Baseline(ref Ref) (float64, bool) {
	base, ok := c.bases[ref]
	return base, ok
}

// Refs returns cached refs in capture order.
func (c *Cache) Refs() []Ref {
	result := make([]Ref, len(c.order))
	copy(result, c.order)
	return result
}

// Len returns the number of cached baselines.
func (c *Cache) Len() int {
	return len(c.order)
}

// Reset forgets every baseline.
func (c *Cache) Reset() {
	clear(c.bases)
	c.order = c.order[:0]
}
