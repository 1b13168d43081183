package attr

import (
	"errors"
	"log/slog"

	"github.com/udisondev/oakbuffs/internal/host"
)

// neutralBaseline is used when the live value could not be read.
const neutralBaseline = 1.0

// Scaler writes layered modifiers on top of cached baselines.
//
// Every write is computed from the baseline, never from the attribute's
// current value, so reapplying the same modifiers is a no-op:
//
//	applied = (baseline + Σadd) * Πmul
//
// Writes are best effort: failures are logged and dropped.
// Not safe for concurrent use; the engine drives it from one goroutine.
type Scaler struct {
	dir   host.Directory
	cache *Cache
	mods  map[Ref]*layerSet
	order []Ref
}

// NewScaler creates a Scaler with its own baseline cache.
func NewScaler(dir host.Directory) *Scaler {
	return &Scaler{
		dir:   dir,
		cache: NewCache(dir),
		mods:  make(map[Ref]*layerSet),
	}
}

// Cache returns the underlying baseline cache.
func (s *Scaler) Cache() *Cache {
	return s.cache
}

// ApplyScaled sets layer's multiplier on ref and writes the result.
func (s *Scaler) ApplyScaled(layer Layer, ref Ref, mult float64) {
	s.set(layer, ref, Modifier{Type: ModMul, Value: mult})
}

// ApplyOffset sets layer's additive offset on ref and writes the result.
func (s *Scaler) ApplyOffset(layer Layer, ref Ref, delta float64) {
	s.set(layer, ref, Modifier{Type: ModAdd, Value: delta})
}

func (s *Scaler) set(layer Layer, ref Ref, mod Modifier) {
	ls, ok := s.mods[ref]
	if !ok {
		ls = &layerSet{}
		s.mods[ref] = ls
		s.order = append(s.order, ref)
	}
	ls[layer] = &mod
	s.write(ref, ls)
}

// Restore removes layer's modifier from ref and rewrites the attribute.
// With no modifiers left the baseline is written back verbatim.
func (s *Scaler) Restore(layer Layer, ref Ref) {
	ls, ok := s.mods[ref]
	if !ok || ls[layer] == nil {
		return
	}
	ls[layer] = nil
	if ls.empty() {
		s.drop(ref)
		s.writeBaseline(ref)
		return
	}
	s.write(ref, ls)
}

// RestoreLayer removes every modifier owned by layer.
func (s *Scaler) RestoreLayer(layer Layer) {
	for _, ref := range s.layerRefs(layer) {
		s.Restore(layer, ref)
	}
}

// RestoreAll writes every cached baseline back and clears all layers.
func (s *Scaler) RestoreAll() {
	clear(s.mods)
	s.order = s.order[:0]
	for _, ref := range s.cache.Refs() {
		s.writeBaseline(ref)
	}
}

// Reset restores everything and forgets all baselines.
func (s *Scaler) Reset() {
	s.RestoreAll()
	s.cache.Reset()
}

// Multiplier returns the combined multiplicative factor on ref (1 if none).
func (s *Scaler) Multiplier(ref Ref) float64 {
	ls, ok := s.mods[ref]
	if !ok {
		return 1
	}
	mul := 1.0
	for _, m := range ls {
		if m != nil && m.Type == ModMul {
			mul *= m.Value
		}
	}
	return mul
}

// Has reports whether layer currently modifies ref.
func (s *Scaler) Has(layer Layer, ref Ref) bool {
	ls, ok := s.mods[ref]
	return ok && ls[layer] != nil
}

// LayerLen returns the number of refs layer currently modifies.
func (s *Scaler) LayerLen(layer Layer) int {
	return len(s.layerRefs(layer))
}

func (s *Scaler) layerRefs(layer Layer) []Ref {
	var refs []Ref
	for _, ref := range s.order {
		if ls := s.mods[ref]; ls[layer] != nil {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (s *Scaler) drop(ref Ref) {
	delete(s.mods, ref)
	n := 0
	for _, r := range s.order {
		if r != ref {
			s.order[n] = r
			n++
		}
	}
	s.order = s.order[:n]
}

// write applies ls on top of ref's baseline. An unreadable attribute is
// scaled from the neutral baseline, which is then cached once the write
// lands so later writes and restores stay anchored to it.
func (s *Scaler) write(ref Ref, ls *layerSet) {
	base, ok := s.cache.Capture(ref)
	if !ok {
		base = neutralBaseline
	}
	if s.setValue(ref, ls.apply(base)) && !ok {
		s.cache.store(ref, neutralBaseline)
	}
}

func (s *Scaler) writeBaseline(ref Ref) {
	base, ok := s.cache.Baseline(ref)
	if !ok {
		return
	}
	s.setValue(ref, base)
}

// setValue writes v and reports whether it landed. A write to a despawned
// entity drops everything the scaler holds for ref.
func (s *Scaler) setValue(ref Ref, v float64) bool {
	err := s.dir.SetValue(ref.Target, ref.Handle, v)
	if err == nil {
		return true
	}
	slog.Debug("attribute write failed",
		"target", ref.Target,
		"handle", ref.Handle,
		"value", v,
		"err", err)
	if errors.Is(err, host.ErrNoEntity) {
		s.forget(ref)
	}
	return false
}

func (s *Scaler) forget(ref Ref) {
	if _, ok := s.mods[ref]; ok {
		s.drop(ref)
	}
	s.cache.forget(ref)
}
