package engine

import "github.com/udisondev/oakbuffs/internal/pylon"

// Snapshot is a read-only view of engine state.
type Snapshot struct {
	Now        float64
	MapID      string
	Stacks     int
	StackAt    float64 // world time the stack decay is measured from
	Multiplier float64
	Anchors    []pylon.Anchor
	Buffs      []pylon.ActiveBuff
	Grant      string // empty when no grant is active
	Baselines  int
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	stacks := e.haste.Stacks()
	s := Snapshot{
		Now:        e.now(),
		MapID:      e.pylons.Registry().MapID(),
		Stacks:     stacks.Count(),
		StackAt:    stacks.LastEvent(),
		Multiplier: e.haste.Multiplier(),
		Anchors:    e.pylons.Registry().Anchors(),
		Buffs:      e.pylons.Buffs(),
		Baselines:  e.scaler.Cache().Len(),
	}
	if k, ok := e.uber.Active(); ok {
		s.Grant = k.Name()
	}
	return s
}
