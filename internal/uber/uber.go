package uber

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/host"
)

// Title is the notification title for uber unique messages.
const Title = "Uber Unique"

// Roller draws uniform integers in [0, n). *rand.Rand satisfies it.
type Roller interface {
	IntN(n int) int
}

// Hit draws uniformly from [1, n] and succeeds on 1.
// n <= 0 never hits.
func Hit(rng Roller, n int) bool {
	if n <= 0 {
		return false
	}
	return 1+rng.IntN(n) == 1
}

// Manager rolls for uber uniques and owns the single active grant.
// Granting always removes the previous grant's effects first.
type Manager struct {
	host   host.Host
	scaler *attr.Scaler
	res    *attr.Resolver
	opts   config.Uber
	rng    Roller

	active    Kind
	hasActive bool
}

// NewManager creates a Manager with no active grant.
func NewManager(h host.Host, scaler *attr.Scaler, res *attr.Resolver, opts config.Uber, rng Roller) *Manager {
	return &Manager{
		host:   h,
		scaler: scaler,
		res:    res,
		opts:   opts,
		rng:    rng,
	}
}

// SetOptions replaces the options.
func (m *Manager) SetOptions(opts config.Uber) {
	m.opts = opts
}

// Active returns the active grant, if any.
func (m *Manager) Active() (Kind, bool) {
	return m.active, m.hasActive
}

// Roll runs one drop trial for a qualifying kill.
// On success a uniformly chosen kind is granted. Returns true on a drop.
func (m *Manager) Roll() bool {
	if !Hit(m.rng, m.opts.DropChance) {
		return false
	}
	m.Grant(Kind(m.rng.IntN(int(numKinds))))
	return true
}

// Grant makes k the active grant.
func (m *Manager) Grant(k Kind) {
	m.scaler.RestoreLayer(attr.LayerUber)
	m.active = k
	m.hasActive = true
	m.apply(k)

	slog.Info("uber unique granted", "kind", k.Name())
	m.host.Notify(Title, fmt.Sprintf("%s acquired - %s", k.Name(), k.Desc()))
}

// Clear removes the active grant without granting another.
func (m *Manager) Clear() {
	m.hasActive = false
	m.scaler.RestoreLayer(attr.LayerUber)
	m.host.Notify(Title, "Cleared")
}

// Reset forgets the active grant without touching attributes.
func (m *Manager) Reset() {
	m.hasActive = false
}

func (m *Manager) apply(k Kind) {
	player, ok := m.host.World.LocalPlayer()
	if !ok {
		return
	}
	for _, c := range k.changes() {
		ref, ok := m.res.Ref(player, c.path)
		if !ok {
			continue
		}
		switch c.mod.Type {
		case attr.ModMul:
			m.scaler.ApplyScaled(attr.LayerUber, ref, c.mod.Value)
		case attr.ModAdd:
			m.scaler.ApplyOffset(attr.LayerUber, ref, c.mod.Value)
		}
	}
}
