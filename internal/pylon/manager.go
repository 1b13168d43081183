package pylon

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/model"
)

// Title is the notification title for pylon messages.
const Title = "Pylons"

const (
	// AnchorSpacing is the distance between generated anchors.
	AnchorSpacing = 1200.0
	// ActivationRadius is how close the pawn must be to use an anchor.
	ActivationRadius = 1200.0
	// GraceSeconds is added to a buff's duration to get the minimum cooldown.
	GraceSeconds = 10
	// hintInterval throttles "near anchor" hints.
	hintInterval = 1.0
)

// Manager owns the anchors, the running buffs and the activation rules.
type Manager struct {
	host   host.Host
	scaler *attr.Scaler
	res    *attr.Resolver
	opts   config.Pylons

	registry *Registry
	buffs    Buffs
	lastHint float64
}

// NewManager creates a Manager with no anchors.
func NewManager(h host.Host, scaler *attr.Scaler, res *attr.Resolver, opts config.Pylons) *Manager {
	return &Manager{
		host:     h,
		scaler:   scaler,
		res:      res,
		opts:     opts,
		registry: NewRegistry(),
	}
}

// SetOptions replaces the options. Existing anchors keep their kinds.
func (m *Manager) SetOptions(opts config.Pylons) {
	m.opts = opts
}

// Registry returns the anchor registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Buffs returns a copy of the running buffs.
func (m *Manager) Buffs() []ActiveBuff {
	return m.buffs.Items()
}

// Tick rebuilds anchors on map change, expires buffs and shows hints.
func (m *Manager) Tick(now float64) {
	m.ensureAnchors(now)
	m.expire(now)
	m.hint(now)
}

func (m *Manager) ensureAnchors(now float64) {
	mapID := m.host.World.MapID()
	pos, havePos := m.pawnPos()
	count := min(max(m.opts.AnchorsPerMap, 1), MaxAnchorsPerMap)
	kinds := assignKinds(count, m.opts.EnableFrenzy, m.opts.EnableConquest)

	if !m.registry.EnsureBuilt(mapID, pos, havePos, now, kinds) {
		return
	}
	slog.Info("pylons built", "map", mapID, "count", m.registry.Len())
	m.host.Notify(Title, fmt.Sprintf("%d pylons ready in %s", m.registry.Len(), mapID))
}

func (m *Manager) expire(now float64) {
	if m.buffs.Prune(now) {
		slog.Debug("all pylon buffs expired, restoring")
		m.scaler.RestoreLayer(attr.LayerPylon)
	}
}

func (m *Manager) hint(now float64) {
	if !m.opts.ShowHints || now-m.lastHint <= hintInterval {
		return
	}
	m.lastHint = now
	pos, ok := m.pawnPos()
	if !ok {
		return
	}
	if a, _, ok := m.registry.Nearest(m.host.World.MapID(), pos, ActivationRadius); ok {
		m.host.Notify(Title, fmt.Sprintf("Near %s - press bound key", a.Kind))
	}
}

// UseNearest activates the closest ready anchor in range.
//
// Rejections are reported to the player and returned:
// ErrNothingNearby, *CooldownError or ErrLimitReached. A rejected attempt
// changes no state.
func (m *Manager) UseNearest(now float64) error {
	err := m.activate(now)

	var cd *CooldownError
	switch {
	case err == nil:
	case errors.Is(err, ErrNothingNearby), errors.Is(err, ErrNoPawn):
		m.host.Notify(Title, "No pylon nearby")
	case errors.As(err, &cd):
		m.host.Notify(Title, cd.Error())
	case errors.Is(err, ErrLimitReached):
		m.host.Notify(Title, "Pylon limit reached")
	}
	return err
}

func (m *Manager) activate(now float64) error {
	pos, ok := m.pawnPos()
	if !ok {
		return ErrNoPawn
	}
	a, _, ok := m.registry.Nearest(m.host.World.MapID(), pos, ActivationRadius)
	if !ok {
		return ErrNothingNearby
	}
	if !a.Ready(now) {
		return &CooldownError{Kind: a.Kind, Remaining: int(a.CooldownUntil - now)}
	}

	// Expired buffs must not count toward the cap. If that empties the set,
	// the expired effects are restored before the new one goes on.
	if m.buffs.Prune(now) {
		m.scaler.RestoreLayer(attr.LayerPylon)
	}
	if m.buffs.Len() >= m.opts.MaxSimultaneous {
		return ErrLimitReached
	}

	dur := float64(m.opts.Duration)
	applyKind(m.host, m.scaler, m.res, a.Kind)
	m.buffs.Add(ActiveBuff{Kind: a.Kind, ExpiresAt: now + dur})
	a.CooldownUntil = now + CooldownFor(m.opts.Cooldown, m.opts.Duration)

	slog.Debug("pylon activated",
		"kind", a.Kind,
		"expires_at", now+dur,
		"cooldown_until", a.CooldownUntil,
		"active", m.buffs.Len())
	m.host.Notify(Title, fmt.Sprintf("%s activated - %ds", a.Kind, m.opts.Duration))
	return nil
}

// CooldownFor returns the anchor cooldown for the configured values:
// never shorter than the buff itself plus GraceSeconds.
func CooldownFor(cooldown, duration int) float64 {
	return float64(max(cooldown, duration+GraceSeconds))
}

// DropHere places a Frenzy anchor at the pawn's feet.
func (m *Manager) DropHere(now float64) bool {
	pos, ok := m.pawnPos()
	if !ok {
		return false
	}
	m.registry.Drop(m.host.World.MapID(), pos, now)
	m.host.Notify(Title, "Temporary Frenzy pylon dropped at your feet")
	return true
}

// Reset discards anchors and buffs without touching attributes.
func (m *Manager) Reset() {
	m.registry.Reset()
	m.buffs.Reset()
	m.lastHint = 0
}

func (m *Manager) pawnPos() (pos model.Vec3, ok bool) {
	pawn, ok := m.host.World.LocalPawn()
	if !ok {
		return pos, false
	}
	return m.host.World.PawnPosition(pawn)
}
