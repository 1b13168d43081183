// Package sim is an in-memory stand-in for the live game.
// It implements every host collaborator so the engine can run headless
// in tests and in the scenario driver.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/model"
)

// Errors returned by the simulated directory.
var (
	ErrNoEntity = host.ErrNoEntity
	ErrNoValue  = errors.New("attribute not present on entity")
	ErrRejected = errors.New("write rejected")
)

// DefaultMap is the map a fresh Game starts on.
const DefaultMap = "Sanctuary3_P"

// Message is one recorded notification.
type Message struct {
	At    float64
	Title string
	Text  string
}

type key struct {
	target host.EntityID
	handle host.Handle
}

// Game is a simulated world with one local player.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type Game struct {
	mu sync.RWMutex

	now   float64
	mapID string

	player    host.EntityID
	pawn      host.EntityID
	hasPlayer bool
	hasPawn   bool
	nextID    host.EntityID

	alive     map[host.EntityID]bool
	positions map[host.EntityID]model.Vec3
	hostile   map[host.EntityID]bool
	teamCheck bool

	handles    map[string]host.Handle
	lastHandle host.Handle
	values     map[key]float64
	readErr    map[key]bool
	readOnly   map[key]bool

	messages []Message
}

// NewGame creates a world with a player controller and a pawn standing at
// the origin of DefaultMap, with stock attribute values.
func NewGame() *Game {
	g := &Game{
		mapID:     DefaultMap,
		nextID:    1,
		alive:     make(map[host.EntityID]bool),
		positions: make(map[host.EntityID]model.Vec3),
		hostile:   make(map[host.EntityID]bool),
		teamCheck: true,
		handles:   make(map[string]host.Handle),
		values:    make(map[key]float64),
		readErr:   make(map[key]bool),
		readOnly:  make(map[key]bool),
	}

	for _, p := range []string{
		attr.PathReloadSpeed,
		attr.PathFireRate,
		attr.PathSplashDamage,
		attr.PathSplashRadius,
		attr.PathProjectiles,
		attr.PathActionSkillCDR,
		attr.PathDamageReduction,
		attr.MovementSpeedPaths[0],
		attr.FieldMaxWalkSpeed,
		attr.FieldMaxSprintSpeed,
		attr.FieldTimeDilation,
		attr.FieldFOV,
		attr.FieldSkillPoints,
	} {
		g.define(p)
	}

	g.player = g.spawn()
	g.hasPlayer = true
	g.seedPlayer(g.player)

	g.pawn = g.spawn()
	g.hasPawn = true
	g.positions[g.pawn] = model.Vec3{}
	g.seedPawn(g.pawn)

	return g
}

func (g *Game) define(path string) host.Handle {
	if h, ok := g.handles[path]; ok {
		return h
	}
	g.lastHandle++
	h := g.lastHandle
	g.handles[path] = h
	return h
}

func (g *Game) spawn() host.EntityID {
	id := g.nextID
	g.nextID++
	g.alive[id] = true
	return id
}

func (g *Game) seedPlayer(id host.EntityID) {
	for path, v := range map[string]float64{
		attr.PathReloadSpeed:     1.0,
		attr.PathFireRate:        1.0,
		attr.PathSplashDamage:    1.0,
		attr.PathSplashRadius:    1.0,
		attr.PathProjectiles:     1.0,
		attr.PathActionSkillCDR:  1.0,
		attr.PathDamageReduction: 1.0,
		attr.FieldFOV:            90.0,
		attr.FieldSkillPoints:    3.0,
	} {
		g.values[key{id, g.handles[path]}] = v
	}
}

func (g *Game) seedPawn(id host.EntityID) {
	for path, v := range map[string]float64{
		attr.FieldMaxWalkSpeed:     600.0,
		attr.FieldMaxSprintSpeed:   900.0,
		attr.FieldTimeDilation:     1.0,
		attr.MovementSpeedPaths[0]: 1.0,
	} {
		g.values[key{id, g.handles[path]}] = v
	}
}

// Resolve implements host.Directory.
func (g *Game) Resolve(path string) (host.Handle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.handles[path]
	return h, ok
}

// Value implements host.Directory.
func (g *Game) Value(target host.EntityID, h host.Handle) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive[target] {
		return 0, fmt.Errorf("read %d/%d: %w", target, h, ErrNoEntity)
	}
	k := key{target, h}
	if g.readErr[k] {
		return 0, fmt.Errorf("read %d/%d: %w", target, h, ErrRejected)
	}
	v, ok := g.values[k]
	if !ok {
		return 0, fmt.Errorf("read %d/%d: %w", target, h, ErrNoValue)
	}
	return v, nil
}

// SetValue implements host.Directory.
func (g *Game) SetValue(target host.EntityID, h host.Handle, v float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive[target] {
		return fmt.Errorf("write %d/%d: %w", target, h, ErrNoEntity)
	}
	k := key{target, h}
	if g.readOnly[k] {
		return fmt.Errorf("write %d/%d: %w", target, h, ErrRejected)
	}
	if _, ok := g.values[k]; !ok {
		return fmt.Errorf("write %d/%d: %w", target, h, ErrNoValue)
	}
	g.values[k] = v
	return nil
}

// Now implements host.World.
func (g *Game) Now() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.now
}

// MapID implements host.World.
func (g *Game) MapID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mapID
}

// LocalPlayer implements host.World.
func (g *Game) LocalPlayer() (host.EntityID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player, g.hasPlayer
}

// LocalPawn implements host.World.
func (g *Game) LocalPawn() (host.EntityID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pawn, g.hasPawn
}

// PawnPosition implements host.World.
func (g *Game) PawnPosition(pawn host.EntityID) (model.Vec3, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.alive[pawn] {
		return model.Vec3{}, false
	}
	pos, ok := g.positions[pawn]
	return pos, ok
}

// IsHostile implements host.World.
func (g *Game) IsHostile(victim host.EntityID) (bool, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.teamCheck {
		return false, false
	}
	return g.hostile[victim], true
}

// Notify implements host.Notifier.
func (g *Game) Notify(title, msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = append(g.messages, Message{At: g.now, Title: title, Text: msg})
}

// Host returns the game wired as every engine collaborator.
func (g *Game) Host() host.Host {
	return host.Host{Directory: g, World: g, Notifier: g}
}
