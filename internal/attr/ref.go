package attr

import "github.com/udisondev/oakbuffs/internal/host"

// Ref identifies one scalable numeric attribute on one target entity.
type Ref struct {
	Target host.EntityID
	Handle host.Handle
}

type resolved struct {
	handle host.Handle
	ok     bool
}

// Resolver caches path → handle lookups for the session.
// Misses are cached too: the game's object table does not change mid-session.
type Resolver struct {
	dir     host.Directory
	handles map[string]resolved
}

// NewResolver creates a Resolver backed by dir.
func NewResolver(dir host.Directory) *Resolver {
	return &Resolver{
		dir:     dir,
		handles: make(map[string]resolved),
	}
}

// Ref resolves path on target. Returns false if the path is unknown.
func (r *Resolver) Ref(target host.EntityID, path string) (Ref, bool) {
	res, seen := r.handles[path]
	if !seen {
		h, ok := r.dir.Resolve(path)
		res = resolved{handle: h, ok: ok}
		r.handles[path] = res
	}
	if !res.ok {
		return Ref{}, false
	}
	return Ref{Target: target, Handle: res.handle}, true
}

// Reset forgets every cached lookup.
func (r *Resolver) Reset() {
	clear(r.handles)
}
