package pylon

// ActiveBuff is a running timed effect.
type ActiveBuff struct {
	Kind      Kind
	ExpiresAt float64
}

// Buffs is the set of running anchor buffs.
// Its size never exceeds the concurrency cap enforced by the caller.
type Buffs struct {
	items []ActiveBuff
}

// Add appends a buff.
func (b *Buffs) Add(buff ActiveBuff) {
	b.items = append(b.items, buff)
}

// Prune drops buffs with ExpiresAt <= now.
// Returns true only on the transition from at least one buff to none.
func (b *Buffs) Prune(now float64) bool {
	before := len(b.items)
	n := 0
	for _, buff := range b.items {
		if buff.ExpiresAt > now {
			b.items[n] = buff
			n++
		}
	}
	b.items = b.items[:n]
	return before > 0 && n == 0
}

// Len returns the number of running buffs.
func (b *Buffs) Len() int {
	return len(b.items)
}

// Items returns a copy of the running buffs.
func (b *Buffs) Items() []ActiveBuff {
	result := make([]ActiveBuff, len(b.items))
	copy(result, b.items)
	return result
}

// Reset drops every buff.
func (b *Buffs) Reset() {
	b.items = b.items[:0]
}
