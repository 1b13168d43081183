package uber

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/oakbuffs/internal/attr"
	"github.com/udisondev/oakbuffs/internal/config"
	"github.com/udisondev/oakbuffs/internal/sim"
	"github.com/udisondev/oakbuffs/internal/testutil"
)

// seqRoller returns scripted draws, reduced modulo n.
type seqRoller struct {
	draws []int
	next  int
}

func (r *seqRoller) IntN(n int) int {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v % n
}

func newUber(t *testing.T, rng Roller) (*sim.Game, *Manager) {
	t.Helper()
	g := sim.NewGame()
	opts := config.DefaultSettings().Uber
	return g, NewManager(g.Host(), attr.NewScaler(g), attr.NewResolver(g), opts, rng)
}

func TestHit_ConvergesToInverseChance(t *testing.T) {
	const (
		n      = 100
		trials = 200_000
	)
	rng := rand.New(rand.NewPCG(7, 11))

	hits := 0
	for range trials {
		if Hit(rng, n) {
			hits++
		}
	}
	assert.InDelta(t, 1.0/n, float64(hits)/trials, 0.0015)
}

func TestHit_NonPositiveNeverHits(t *testing.T) {
	rng := &seqRoller{draws: []int{0}}
	assert.False(t, Hit(rng, 0))
	assert.False(t, Hit(rng, -5))
	assert.True(t, Hit(rng, 1), "1 in 1 always hits")
}

func TestRoll_GrantsChosenKind(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{0, int(KindNovaCatalyst)}})

	require.True(t, m.Roll())

	k, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, KindNovaCatalyst, k)
	assert.Equal(t, 4.0, testutil.PlayerField(t, g, attr.PathSplashDamage))
	assert.Equal(t, 2.0, testutil.PlayerField(t, g, attr.PathSplashRadius))

	testutil.AssertLastMessage(t, g, Title, "Nova Catalyst acquired - +300% splash dmg")
}

func TestRoll_MissChangesNothing(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{5}})

	assert.False(t, m.Roll())
	_, ok := m.Active()
	assert.False(t, ok)
	assert.Empty(t, g.Messages())
}

func TestGrant_ReplacesPreviousCompletely(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{0}})

	m.Grant(KindNovaCatalyst)
	m.Grant(KindAegis)

	assert.Equal(t, 1.0, testutil.PlayerField(t, g, attr.PathSplashDamage))
	assert.Equal(t, 1.0, testutil.PlayerField(t, g, attr.PathSplashRadius))
	assert.Equal(t, 0.5, testutil.PlayerField(t, g, attr.PathDamageReduction))
	k, _ := m.Active()
	assert.Equal(t, KindAegis, k)
}

func TestGrant_SkillPointsRemovedWithGrant(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{0}})

	m.Grant(KindParagonTalisman)
	assert.Equal(t, 13.0, testutil.PlayerField(t, g, attr.FieldSkillPoints))

	m.Grant(KindEchoingVolumes)
	assert.Equal(t, 3.0, testutil.PlayerField(t, g, attr.FieldSkillPoints))
	assert.Equal(t, 3.0, testutil.PlayerField(t, g, attr.PathProjectiles))
}

func TestGrant_SameKindTwiceIsIdempotent(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{0}})

	m.Grant(KindAegis)
	m.Grant(KindAegis)

	assert.Equal(t, 0.5, testutil.PlayerField(t, g, attr.PathDamageReduction))
}

func TestClear(t *testing.T) {
	g, m := newUber(t, &seqRoller{draws: []int{0}})
	m.Grant(KindEchoingVolumes)

	m.Clear()

	_, ok := m.Active()
	assert.False(t, ok)
	assert.Equal(t, 1.0, testutil.PlayerField(t, g, attr.PathProjectiles))
	testutil.AssertLastMessage(t, g, Title, "Cleared")
}

func TestKinds_AllDescribed(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 4)
	for _, k := range kinds {
		assert.NotEqual(t, "Unknown", k.Name())
		assert.NotEmpty(t, k.Desc())
		assert.NotEmpty(t, k.changes())
	}
}
