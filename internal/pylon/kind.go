package pylon

import (
	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/host"
)

// Kind is the timed effect an anchor grants.
type Kind int8

const (
	KindFrenzy Kind = iota
	KindConquest
)

// Effect multipliers.
const (
	FrenzyTimeDilation = 1.25
	FrenzyReload       = 1.25
	FrenzyFireRate     = 1.20
	ConquestSplashDmg  = 1.35
	ConquestSplashRad  = 1.30
)

// String returns the display name.
func (k Kind) String() string {
	switch k {
	case KindFrenzy:
		return "Frenzy"
	case KindConquest:
		return "Conquest"
	default:
		return "Unknown"
	}
}

// scaling is one attribute write of an effect.
type scaling struct {
	onPawn bool
	path   string
	mult   float64
}

// scalings returns the attribute writes for k.
func (k Kind) scalings() []scaling {
	switch k {
	case KindFrenzy:
		return []scaling{
			{onPawn: true, path: attr.FieldTimeDilation, mult: FrenzyTimeDilation},
			{path: attr.PathReloadSpeed, mult: FrenzyReload},
			{path: attr.PathFireRate, mult: FrenzyFireRate},
		}
	case KindConquest:
		return []scaling{
			{path: attr.PathSplashDamage, mult: ConquestSplashDmg},
			{path: attr.PathSplashRadius, mult: ConquestSplashRad},
		}
	default:
		return nil
	}
}

// assignKinds spreads the enabled kinds round-robin over count anchors.
// With nothing enabled every anchor gets Frenzy.
func assignKinds(count int, frenzy, conquest bool) []Kind {
	var pool []Kind
	if frenzy {
		pool = append(pool, KindFrenzy)
	}
	if conquest {
		pool = append(pool, KindConquest)
	}
	if len(pool) == 0 {
		pool = []Kind{KindFrenzy}
	}

	kinds := make([]Kind, count)
	for i := range kinds {
		kinds[i] = pool[i%len(pool)]
	}
	return kinds
}

// applyKind writes k's effect on the local player. Requires both a player
// controller and a pawn; missing either is a no-op.
func applyKind(h host.Host, scaler *attr.Scaler, res *attr.Resolver, k Kind) {
	player, ok := h.World.LocalPlayer()
	if !ok {
		return
	}
	pawn, ok := h.World.LocalPawn()
	if !ok {
		return
	}
	for _, s := range k.scalings() {
		target := player
		if s.onPawn {
			target = pawn
		}
		ref, ok := res.Ref(target, s.path)
		if !ok {
			continue
		}
		scaler.ApplyScaled(attr.LayerPylon, ref, s.mult)
	}
}
