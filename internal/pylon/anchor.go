package pylon

import (
	"math"

	"github.com/udisondev/oakbuffs/internal/model"
)

// Anchor is a reusable, position-bound trigger for a timed buff.
type Anchor struct {
	MapID         string
	Pos           model.Vec3
	Kind          Kind
	CooldownUntil float64
	Dropped       bool
}

// Ready reports whether the anchor can be activated at now.
func (a *Anchor) Ready(now float64) bool {
	return now >= a.CooldownUntil
}

// anchorOffsets are the spawn positions relative to the player.
var anchorOffsets = []model.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: AnchorSpacing, Y: 0, Z: 0},
	{X: 0, Y: AnchorSpacing, Z: 0},
}

// MaxAnchorsPerMap bounds generated anchors (dropped ones are extra).
var MaxAnchorsPerMap = len(anchorOffsets)

// Registry holds the anchors of the current map.
type Registry struct {
	anchors  []*Anchor
	builtFor string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// EnsureBuilt regenerates anchors when the map changed or none exist.
// New anchors sit at fixed offsets from pos and are ready immediately.
// Returns true if anchors were (re)generated. With no known position the
// registry stays empty and the next call retries.
func (r *Registry) EnsureBuilt(mapID string, pos model.Vec3, havePos bool, now float64, kinds []Kind) bool {
	if r.builtFor == mapID && len(r.anchors) > 0 {
		return false
	}
	r.anchors = r.anchors[:0]
	r.builtFor = mapID
	if !havePos {
		return false
	}

	n := min(len(kinds), len(anchorOffsets))
	for i := range n {
		r.anchors = append(r.anchors, &Anchor{
			MapID:         mapID,
			Pos:           pos.Add(anchorOffsets[i]),
			Kind:          kinds[i],
			CooldownUntil: now,
		})
	}
	return true
}

// Drop adds a Frenzy anchor at pos on mapID.
func (r *Registry) Drop(mapID string, pos model.Vec3, now float64) *Anchor {
	a := &Anchor{
		MapID:         mapID,
		Pos:           pos,
		Kind:          KindFrenzy,
		CooldownUntil: now,
		Dropped:       true,
	}
	r.anchors = append(r.anchors, a)
	return a
}

// Nearest returns the closest anchor on mapID within radius of pos.
// Anchors on other maps are ignored; ties keep the earlier anchor.
func (r *Registry) Nearest(mapID string, pos model.Vec3, radius float64) (*Anchor, float64, bool) {
	var best *Anchor
	bestDist := math.Inf(1)
	for _, a := range r.anchors {
		if a.MapID != mapID {
			continue
		}
		d := a.Pos.Distance(pos)
		if d < bestDist && d <= radius {
			best = a
			bestDist = d
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestDist, true
}

// Anchors returns a copy of every anchor.
func (r *Registry) Anchors() []Anchor {
	result := make([]Anchor, len(r.anchors))
	for i, a := range r.anchors {
		result[i] = *a
	}
	return result
}

// Len returns the number of anchors.
func (r *Registry) Len() int {
	return len(r.anchors)
}

// MapID returns the map the registry was last built for.
func (r *Registry) MapID() string {
	return r.builtFor
}

// Reset discards every anchor.
func (r *Registry) Reset() {
	r.anchors = r.anchors[:0]
	r.builtFor = ""
}
