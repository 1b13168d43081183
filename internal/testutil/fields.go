package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/sim"
)

// Field читает значение атрибута и валит тест, если его нет.
func Field(t testing.TB, g *sim.Game, target host.EntityID, path string) float64 {
	t.Helper()

	v, ok := g.Field(target, path)
	require.True(t, ok, "field %s should exist on entity %d", path, target)
	return v
}

// PlayerField читает атрибут с контроллера локального игрока.
func PlayerField(t testing.TB, g *sim.Game, path string) float64 {
	t.Helper()
	return Field(t, g, g.Player(), path)
}

// PawnField читает атрибут с текущего pawn.
func PawnField(t testing.TB, g *sim.Game, path string) float64 {
	t.Helper()
	return Field(t, g, g.Pawn(), path)
}

// AssertLastMessage проверяет последнее HUD-сообщение.
func AssertLastMessage(t testing.TB, g *sim.Game, title, text string) {
	t.Helper()

	msg, ok := g.LastMessage()
	require.True(t, ok, "expected a HUD message %q", text)
	require.Equal(t, title, msg.Title)
	require.Equal(t, text, msg.Text)
}
