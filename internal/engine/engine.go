// Package engine owns the modifier systems for one game session and routes
// host callbacks (world ticks, kills, key presses) to them.
//
// All methods must be called from a single goroutine; the host's callback
// thread is that goroutine.
package engine

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/haste"
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/pylon"
	"github.com/udisondev/oakbuffs/internal/uber"
)

// Engine is the session-scoped modifier engine.
type Engine struct {
	host     host.Host
	settings config.Settings

	scaler *attr.Scaler
	res    *attr.Resolver
	haste  *haste.Haste
	pylons *pylon.Manager
	uber   *uber.Manager

	rng uber.Roller
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoller sets the random source for drop rolls.
func WithRoller(rng uber.Roller) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// globalRoller draws from the auto-seeded math/rand/v2 source.
type globalRoller struct{}

func (globalRoller) IntN(n int) int { return rand.IntN(n) }

// New creates an Engine for a fresh session.
func New(h host.Host, settings config.Settings, opts ...Option) *Engine {
	settings.Clamp()
	e := &Engine{
		host:     h,
		settings: settings,
		scaler:   attr.NewScaler(h.Directory),
		res:      attr.NewResolver(h.Directory),
		rng:      globalRoller{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.haste = haste.New(h, e.scaler, e.res, settings.Haste)
	e.pylons = pylon.NewManager(h, e.scaler, e.res, settings.Pylons)
	e.uber = uber.NewManager(h, e.scaler, e.res, settings.Uber, e.rng)
	return e
}

// Settings returns the options in effect.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// SetSettings applies options changed in the settings UI.
func (e *Engine) SetSettings(s config.Settings) {
	s.Clamp()
	e.settings = s
	e.haste.SetOptions(s.Haste)
	e.pylons.SetOptions(s.Pylons)
	e.uber.SetOptions(s.Uber)
}

// OnTick runs once per player tick. Each system's step is isolated, so a
// failure in one never skips another.
func (e *Engine) OnTick() {
	now := e.now()
	e.guard("pylon tick", func() { e.pylons.Tick(now) })
	e.guard("haste tick", func() { e.haste.Tick(now) })
}

// OnEnemyDied handles a death event. Only kills of hostile victims count;
// when hostility cannot be determined the kill counts.
func (e *Engine) OnEnemyDied(victim host.EntityID) {
	var qualifies bool
	e.guard("hostility check", func() {
		hostile, known := e.host.World.IsHostile(victim)
		qualifies = !known || hostile
	})
	if !qualifies {
		return
	}
	e.guard("haste gain", e.haste.Gain)
	e.guard("uber roll", func() { e.uber.Roll() })
}

// AddStack grants one stack as if from a kill.
func (e *Engine) AddStack() {
	e.guard("add stack", e.haste.Gain)
}

// ClearStacks drops all stacks and restores haste attributes.
func (e *Engine) ClearStacks() {
	e.guard("clear stacks", e.haste.Clear)
}

// UseNearestPylon tries to activate the nearest anchor.
func (e *Engine) UseNearestPylon() {
	e.guard("use pylon", func() {
		if err := e.pylons.UseNearest(e.now()); err != nil {
			slog.Debug("pylon activation rejected", "reason", err)
		}
	})
}

// DropPylon places a temporary Frenzy anchor at the pawn's feet.
func (e *Engine) DropPylon() {
	e.guard("drop pylon", func() { e.pylons.DropHere(e.now()) })
}

// ClearUber removes the active uber grant.
func (e *Engine) ClearUber() {
	e.guard("clear uber", e.uber.Clear)
}

// Reset restores every attribute the engine touched and forgets all
// session state. The host must call it on level unload, map change and
// session end; the engine never resets itself.
func (e *Engine) Reset() {
	e.guard("reset", func() {
		e.scaler.Reset()
		e.res.Reset()
		e.haste.Reset()
		e.pylons.Reset()
		e.uber.Reset()
	})
	slog.Info("modifier engine reset")
}

// now reads the world clock; an unreadable clock reads as 0.
func (e *Engine) now() (now float64) {
	e.guard("world time", func() { now = e.host.World.Now() })
	return now
}

// guard runs fn and recovers a panic raised by a host collaborator, so one
// broken callback never takes the host down.
func (e *Engine) guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("engine callback failed", "op", op, "panic", r)
		}
	}()
	fn()
}
