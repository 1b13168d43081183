package uber

import "github.com/udisondev/oakbuffs/internal/attr"

// Kind is one persistent uber unique reward.
type Kind int8

const (
	KindAegis Kind = iota
	KindEchoingVolumes
	KindNovaCatalyst
	KindParagonTalisman

	numKinds
)

// Kinds returns every grant kind in roll order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Name returns the item name.
func (k Kind) Name() string {
	switch k {
	case KindAegis:
		return "Aegis of the Ancients"
	case KindEchoingVolumes:
		return "Echoing Volumes"
	case KindNovaCatalyst:
		return "Nova Catalyst"
	case KindParagonTalisman:
		return "Paragon Talisman"
	default:
		return "Unknown"
	}
}

// Desc returns the one-line effect description.
func (k Kind) Desc() string {
	switch k {
	case KindAegis:
		return "50% damage taken"
	case KindEchoingVolumes:
		return "+200% projectiles per shot"
	case KindNovaCatalyst:
		return "+300% splash dmg"
	case KindParagonTalisman:
		return "+10 skill points"
	default:
		return ""
	}
}

func (k Kind) String() string {
	return k.Name()
}

// change is one attribute modification of a grant.
type change struct {
	path string
	mod  attr.Modifier
}

func mul(path string, v float64) change {
	return change{path: path, mod: attr.Modifier{Type: attr.ModMul, Value: v}}
}

func add(path string, v float64) change {
	return change{path: path, mod: attr.Modifier{Type: attr.ModAdd, Value: v}}
}

// changes returns the attribute modifications k applies to the player.
func (k Kind) changes() []change {
	switch k {
	case KindAegis:
		return []change{mul(attr.PathDamageReduction, 0.5)}
	case KindEchoingVolumes:
		return []change{mul(attr.PathProjectiles, 3.0)}
	case KindNovaCatalyst:
		return []change{
			mul(attr.PathSplashDamage, 4.0),
			mul(attr.PathSplashRadius, 2.0),
		}
	case KindParagonTalisman:
		return []change{add(attr.FieldSkillPoints, 10)}
	default:
		return nil
	}
}
