package attr

// ModType defines how a layer modifier combines with the baseline.
type ModType int8

const (
	ModMul ModType = iota // Multiplicative factor (e.g. ×1.25 reload speed)
	ModAdd                // Additive offset (e.g. +10 skill points)
)

// Modifier is a single layer's contribution to one attribute.
type Modifier struct {
	Type  ModType
	Value float64
}

// Layer identifies which feature set owns a modifier.
// Layers never overwrite each other; each can be restored on its own.
type Layer int8

const (
	LayerHaste Layer = iota
	LayerPylon
	LayerUber

	numLayers
)

// String returns the layer name used in logs.
func (l Layer) String() string {
	switch l {
	case LayerHaste:
		return "haste"
	case LayerPylon:
		return "pylon"
	case LayerUber:
		return "uber"
	default:
		return "unknown"
	}
}

// layerSet holds at most one modifier per layer for a single Ref.
type layerSet [numLayers]*Modifier

func (ls *layerSet) empty() bool {
	for _, m := range ls {
		if m != nil {
			return false
		}
	}
	return true
}

// apply computes (base + Σadd) * Πmul in fixed layer order,
// so the same modifiers always give bit-identical results.
func (ls *layerSet) apply(base float64) float64 {
	add := 0.0
	mul := 1.0
	for _, m := range ls {
		if m == nil {
			continue
		}
		switch m.Type {
		case ModAdd:
			add += m.Value
		case ModMul:
			mul *= m.Value
		}
	}
	return (base + add) * mul
}
