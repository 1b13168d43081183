package sim

import (
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/model"
)

// Advance moves the world clock forward by dt seconds.
func (g *Game) Advance(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now += dt
}

// SetTime sets the world clock. Time never moves backwards.
func (g *Game) SetTime(t float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t > g.now {
		g.now = t
	}
}

// Travel switches to another map. The player keeps its pawn.
func (g *Game) Travel(mapID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mapID = mapID
}

// MovePawn teleports the local pawn.
func (g *Game) MovePawn(pos model.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.hasPawn {
		g.positions[g.pawn] = pos
	}
}

// Respawn destroys the current pawn and spawns a fresh one with stock
// values at the same position.
func (g *Game) Respawn() host.EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()

	var pos model.Vec3
	if g.hasPawn {
		pos = g.positions[g.pawn]
		g.kill(g.pawn)
	}
	g.pawn = g.spawn()
	g.hasPawn = true
	g.positions[g.pawn] = pos
	g.seedPawn(g.pawn)
	return g.pawn
}

// DespawnPawn removes the local pawn (death screen, loading).
func (g *Game) DespawnPawn() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.hasPawn {
		g.kill(g.pawn)
		g.hasPawn = false
	}
}

func (g *Game) kill(id host.EntityID) {
	delete(g.alive, id)
	delete(g.positions, id)
	for k := range g.values {
		if k.target == id {
			delete(g.values, k)
		}
	}
}

// SpawnEnemy adds a victim entity with the given hostility.
func (g *Game) SpawnEnemy(hostile bool) host.EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.spawn()
	g.hostile[id] = hostile
	return id
}

// SetTeamCheck toggles whether hostility is known.
func (g *Game) SetTeamCheck(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.teamCheck = enabled
}

// Player returns the player controller id.
func (g *Game) Player() host.EntityID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player
}

// Pawn returns the current pawn id.
func (g *Game) Pawn() host.EntityID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pawn
}

// Field reads path on target directly, bypassing failure injection.
func (g *Game) Field(target host.EntityID, path string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.handles[path]
	if !ok {
		return 0, false
	}
	v, ok := g.values[key{target, h}]
	return v, ok
}

// SetField writes path on target directly, as a game-side change would.
func (g *Game) SetField(target host.EntityID, path string, v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key{target, g.define(path)}] = v
}

// Undefine makes path unresolvable.
func (g *Game) Undefine(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handles, path)
}

// FailReads makes reads of path on target fail.
func (g *Game) FailReads(target host.EntityID, path string, fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.readErr[key{target, g.define(path)}] = fail
}

// RejectWrites makes writes of path on target fail.
func (g *Game) RejectWrites(target host.EntityID, path string, reject bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.readOnly[key{target, g.define(path)}] = reject
}

// Messages returns a copy of every recorded notification.
func (g *Game) Messages() []Message {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make([]Message, len(g.messages))
	copy(result, g.messages)
	return result
}

// LastMessage returns the most recent notification.
func (g *Game) LastMessage() (Message, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.messages) == 0 {
		return Message{}, false
	}
	return g.messages[len(g.messages)-1], true
}

// ClearMessages drops recorded notifications.
func (g *Game) ClearMessages() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = g.messages[:0]
}
