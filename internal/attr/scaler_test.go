package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/host"
	"github.com/udisondev/oakbuffs/internal/sim"
	"github.com/udisondev/oakbuffs/internal/testutil"
)

func newScaler(t *testing.T) (*sim.Game, *attr.Scaler, *attr.Resolver) {
	t.Helper()
	g := sim.NewGame()
	return g, attr.NewScaler(g), attr.NewResolver(g)
}

func mustRef(t *testing.T, r *attr.Resolver, target host.EntityID, path string) attr.Ref {
	t.Helper()
	ref, ok := r.Ref(target, path)
	require.True(t, ok, "path %s should resolve", path)
	return ref
}

func TestApplyScaled_Idempotent(t *testing.T) {
	g, s, r := newScaler(t)
	pawn := g.Pawn()
	ref := mustRef(t, r, pawn, attr.FieldMaxWalkSpeed)

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	first := testutil.Field(t, g, pawn, attr.FieldMaxWalkSpeed)
	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	second := testutil.Field(t, g, pawn, attr.FieldMaxWalkSpeed)

	assert.Equal(t, 900.0, first)
	assert.Equal(t, first, second, "reapplying must not compound")
}

func TestApplyScaled_MultipliesFromBaseline(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.FieldFOV)

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	s.ApplyScaled(attr.LayerHaste, ref, 2.0)

	assert.Equal(t, 180.0, testutil.Field(t, g, player, attr.FieldFOV))
}

func TestApplyScaled_IgnoresOutsideChanges(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.PathReloadSpeed)

	s.ApplyScaled(attr.LayerHaste, ref, 1.25)
	// Something else in the game rewrites the attribute.
	g.SetField(g.Player(), attr.PathReloadSpeed, 7)
	s.ApplyScaled(attr.LayerHaste, ref, 1.25)

	assert.Equal(t, 1.25, testutil.Field(t, g, player, attr.PathReloadSpeed))
}

func TestRestoreAll_RestoresFirstObserved(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	pawn := g.Pawn()

	walk := mustRef(t, r, pawn, attr.FieldMaxWalkSpeed)
	fov := mustRef(t, r, player, attr.FieldFOV)
	sp := mustRef(t, r, player, attr.FieldSkillPoints)

	s.ApplyScaled(attr.LayerHaste, walk, 1.2)
	s.ApplyScaled(attr.LayerPylon, walk, 1.25)
	s.ApplyScaled(attr.LayerHaste, fov, 1.02)
	s.ApplyOffset(attr.LayerUber, sp, 10)
	s.ApplyScaled(attr.LayerHaste, walk, 2.0)

	s.RestoreAll()

	assert.Equal(t, 600.0, testutil.Field(t, g, pawn, attr.FieldMaxWalkSpeed))
	assert.Equal(t, 90.0, testutil.Field(t, g, player, attr.FieldFOV))
	assert.Equal(t, 3.0, testutil.Field(t, g, player, attr.FieldSkillPoints))
	assert.Equal(t, 0, s.LayerLen(attr.LayerHaste))
}

func TestLayers_CombineAndRestoreIndependently(t *testing.T) {
	g, s, r := newScaler(t)
	pawn := g.Pawn()
	td := mustRef(t, r, pawn, attr.FieldTimeDilation)

	s.ApplyScaled(attr.LayerHaste, td, 1.2)
	s.ApplyScaled(attr.LayerPylon, td, 1.25)
	assert.InDelta(t, 1.5, testutil.Field(t, g, pawn, attr.FieldTimeDilation), 1e-12)
	assert.InDelta(t, 1.5, s.Multiplier(td), 1e-12)

	s.RestoreLayer(attr.LayerPylon)
	assert.InDelta(t, 1.2, testutil.Field(t, g, pawn, attr.FieldTimeDilation), 1e-12)
	assert.False(t, s.Has(attr.LayerPylon, td))
	assert.True(t, s.Has(attr.LayerHaste, td))

	s.Restore(attr.LayerHaste, td)
	assert.Equal(t, 1.0, testutil.Field(t, g, pawn, attr.FieldTimeDilation))
	assert.Equal(t, 1.0, s.Multiplier(td))
}

func TestApplyOffset(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	sp := mustRef(t, r, player, attr.FieldSkillPoints)

	s.ApplyOffset(attr.LayerUber, sp, 10)
	s.ApplyOffset(attr.LayerUber, sp, 10)
	assert.Equal(t, 13.0, testutil.Field(t, g, player, attr.FieldSkillPoints))

	s.RestoreLayer(attr.LayerUber)
	assert.Equal(t, 3.0, testutil.Field(t, g, player, attr.FieldSkillPoints))
}

func TestCapture_TransientReadFailureStaysIdempotent(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.PathFireRate)
	g.SetField(player, attr.PathFireRate, 2.0)
	g.FailReads(player, attr.PathFireRate, true)

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	assert.Equal(t, 1.5, testutil.Field(t, g, player, attr.PathFireRate), "neutral baseline when unreadable")
	base, cached := s.Cache().Baseline(ref)
	require.True(t, cached)
	assert.Equal(t, 1.0, base)

	g.FailReads(player, attr.PathFireRate, false)
	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	assert.Equal(t, 1.5, testutil.Field(t, g, player, attr.PathFireRate), "reapply must not compound")

	s.RestoreAll()
	assert.Equal(t, 1.0, testutil.Field(t, g, player, attr.PathFireRate))
}

func TestRestore_NeverReadableReturnsToNeutral(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.PathFireRate)
	g.SetField(player, attr.PathFireRate, 2.0)
	g.FailReads(player, attr.PathFireRate, true)

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	s.RestoreLayer(attr.LayerHaste)
	assert.Equal(t, 1.0, testutil.Field(t, g, player, attr.PathFireRate))

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	assert.Equal(t, 1.5, testutil.Field(t, g, player, attr.PathFireRate))
	s.RestoreAll()
	assert.Equal(t, 1.0, testutil.Field(t, g, player, attr.PathFireRate))
}

func TestCapture_FailedReadAndWriteCachesNothing(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.PathFireRate)
	g.FailReads(player, attr.PathFireRate, true)
	g.RejectWrites(player, attr.PathFireRate, true)

	s.ApplyScaled(attr.LayerHaste, ref, 1.5)
	_, cached := s.Cache().Baseline(ref)
	assert.False(t, cached)

	g.FailReads(player, attr.PathFireRate, false)
	g.RejectWrites(player, attr.PathFireRate, false)
	s.ApplyScaled(attr.LayerHaste, ref, 1.5)

	base, cached := s.Cache().Baseline(ref)
	require.True(t, cached)
	assert.Equal(t, 1.0, base)
	assert.Equal(t, 1.5, testutil.Field(t, g, player, attr.PathFireRate))
}

func TestCapture_WriteOnce(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.FieldFOV)

	base, ok := s.Cache().Capture(ref)
	require.True(t, ok)
	g.SetField(g.Player(), attr.FieldFOV, 110)
	again, ok := s.Cache().Capture(ref)
	require.True(t, ok)

	assert.Equal(t, base, again)
	assert.Equal(t, 1, s.Cache().Len())
}

func TestScaler_WriteFailureSwallowed(t *testing.T) {
	g, s, r := newScaler(t)
	pawn := g.Pawn()
	ref := mustRef(t, r, pawn, attr.FieldMaxSprintSpeed)
	g.RejectWrites(g.Pawn(), attr.FieldMaxSprintSpeed, true)

	assert.NotPanics(t, func() {
		s.ApplyScaled(attr.LayerHaste, ref, 2)
		s.RestoreAll()
	})
	assert.Equal(t, 900.0, testutil.Field(t, g, pawn, attr.FieldMaxSprintSpeed))
}

func TestScaler_DespawnedTarget(t *testing.T) {
	g, s, r := newScaler(t)
	pawn := g.Pawn()
	ref := mustRef(t, r, pawn, attr.FieldMaxWalkSpeed)
	s.ApplyScaled(attr.LayerHaste, ref, 1.1)

	g.DespawnPawn()

	assert.NotPanics(t, func() {
		s.ApplyScaled(attr.LayerHaste, ref, 1.2)
		s.RestoreLayer(attr.LayerHaste)
	})
}

func TestScaler_DespawnedTargetIsForgotten(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	old := mustRef(t, r, g.Pawn(), attr.FieldMaxWalkSpeed)
	reload := mustRef(t, r, player, attr.PathReloadSpeed)
	s.ApplyScaled(attr.LayerHaste, old, 1.1)
	s.ApplyScaled(attr.LayerHaste, reload, 1.1)
	require.Equal(t, 2, s.Cache().Len())

	pawn := g.Respawn()
	s.RestoreAll()

	assert.Equal(t, []attr.Ref{reload}, s.Cache().Refs())
	_, cached := s.Cache().Baseline(old)
	assert.False(t, cached)
	assert.Equal(t, 1.0, testutil.Field(t, g, player, attr.PathReloadSpeed))

	fresh := mustRef(t, r, pawn, attr.FieldMaxWalkSpeed)
	s.ApplyScaled(attr.LayerHaste, fresh, 1.1)
	s.ApplyScaled(attr.LayerHaste, old, 1.1)
	assert.Equal(t, 2, s.Cache().Len(), "dead pawn is not re-cached")
	assert.False(t, s.Has(attr.LayerHaste, old))
}

func TestScaler_Reset(t *testing.T) {
	g, s, r := newScaler(t)
	player := g.Player()
	ref := mustRef(t, r, player, attr.PathSplashDamage)

	s.ApplyScaled(attr.LayerUber, ref, 4)
	s.Reset()

	assert.Equal(t, 1.0, testutil.Field(t, g, player, attr.PathSplashDamage))
	assert.Equal(t, 0, s.Cache().Len())
}

func TestResolver_CachesMisses(t *testing.T) {
	g := sim.NewGame()
	r := attr.NewResolver(g)

	_, ok := r.Ref(g.Player(), attr.MovementSpeedPaths[1])
	assert.False(t, ok)

	// Defining it later does not change the session's view.
	g.SetField(g.Pawn(), attr.MovementSpeedPaths[1], 1)
	_, ok = r.Ref(g.Pawn(), attr.MovementSpeedPaths[1])
	assert.False(t, ok)

	r.Reset()
	_, ok = r.Ref(g.Pawn(), attr.MovementSpeedPaths[1])
	assert.True(t, ok)
}
