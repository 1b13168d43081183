// Package host declares the game-side collaborators the engine consumes.
//
// Every call here may fail: entities despawn, engine objects go missing,
// writes get rejected. Callers treat a failure as a no-op.
package host

import (
	"errors"

	"github.com/udisondev/oakbuffs/internal/model"
)

// ErrNoEntity is returned by a Directory when the target entity no longer
// exists. Anything keyed on that entity can be forgotten.
var ErrNoEntity = errors.New("entity does not exist")

// EntityID identifies a live entity (player controller, pawn, victim).
type EntityID uint32

// Handle is an opaque, session-stable reference to a resolved attribute
// definition or raw numeric field.
type Handle uint32

// Directory resolves attribute paths and reads/writes raw values.
type Directory interface {
	// Resolve returns false when the path names nothing in this game build.
	Resolve(path string) (Handle, bool)
	Value(target EntityID, h Handle) (float64, error)
	SetValue(target EntityID, h Handle, v float64) error
}

// World exposes the clock and the local player's handles.
type World interface {
	Now() float64
	MapID() string
	LocalPlayer() (EntityID, bool)
	LocalPawn() (EntityID, bool)
	PawnPosition(pawn EntityID) (model.Vec3, bool)
	// IsHostile reports whether victim is hostile to the local player.
	// known is false when the team check itself is unavailable.
	IsHostile(victim EntityID) (hostile, known bool)
}

// Notifier shows a transient on-screen message. Best effort.
type Notifier interface {
	Notify(title, msg string)
}

// Host bundles the collaborators handed to the engine.
type Host struct {
	Directory Directory
	World     World
	Notifier  Notifier
}

// Target returns the entity that carries player-scoped attributes:
// the player controller, or the pawn when no controller is available.
func (h Host) Target() (EntityID, bool) {
	if id, ok := h.World.LocalPlayer(); ok {
		return id, true
	}
	return h.World.LocalPawn()
}

// Notify forwards to the notifier when one is configured.
func (h Host) Notify(title, msg string) {
	if h.Notifier == nil {
		return
	}
	h.Notifier.Notify(title, msg)
}
