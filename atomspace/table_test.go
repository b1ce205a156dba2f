package atomspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() (*AtomTable, Type, Type) {
	tbl := New()
	concept := tbl.Types().Register("CONCEPT", NODE)
	list := tbl.Types().Register("LIST", LINK)
	return tbl, concept, list
}

// S1: adding a duplicate node returns the same handle and does not grow
// the table.
func TestAdd_StructuralDedup(t *testing.T) {
	tbl, concept, _ := newTestTable()

	h1, err := tbl.Add(NewNode(concept, "cat"))
	require.NoError(t, err)

	h2, err := tbl.Add(NewNode(concept, "cat"))
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, tbl.Size())
}

// L1: idempotent add merges truth values instead of erroring.
func TestAdd_MergesTruthValue(t *testing.T) {
	tbl, concept, _ := newTestTable()

	a := NewNode(concept, "dog")
	a.SetTruthValue(SimpleTruthValue{Strength: 1, Confidence: 0.5})
	h, err := tbl.Add(a)
	require.NoError(t, err)

	b := NewNode(concept, "dog")
	b.SetTruthValue(SimpleTruthValue{Strength: 0, Confidence: 0.5})
	_, err = tbl.Add(b)
	require.NoError(t, err)

	merged := tbl.Resolve(h).TruthValue().(SimpleTruthValue)
	assert.InDelta(t, 0.5, merged.Strength, 1e-9)
	assert.InDelta(t, 0.75, merged.Confidence, 1e-9)
}

// I2: a link naming a handle that doesn't resolve in this table is
// rejected.
func TestAdd_InvalidLink(t *testing.T) {
	tbl, _, list := newTestTable()

	_, err := tbl.Add(NewLink(list, []Handle{Handle(999)}))
	assert.ErrorIs(t, err, ErrInvalidLink)
}

// S2/S3: incoming-set maintenance and the two-step remove scenario.
func TestIncomingAndRemove(t *testing.T) {
	tbl, concept, list := newTestTable()

	h1, err := tbl.Add(NewNode(concept, "a"))
	require.NoError(t, err)
	h2, err := tbl.Add(NewNode(concept, "b"))
	require.NoError(t, err)
	h3, err := tbl.Add(NewLink(list, []Handle{h1, h2}))
	require.NoError(t, err)

	got := tbl.GetByOutgoingExact(list, []Handle{h1, h2})
	assert.Equal(t, h3, got)

	removed := tbl.Remove(h1, false)
	assert.False(t, removed, "non-recursive remove must fail while h1 has a referrer")
	assert.Equal(t, 3, tbl.Size())

	removed = tbl.Remove(h1, true)
	assert.True(t, removed)
	assert.Equal(t, 0, tbl.Size())
	assert.False(t, tbl.Valid(h3))
}

// S4: compound positional query with a mix of exact-handle and
// target-type slots.
func TestGetByOutgoing_Compound(t *testing.T) {
	tbl := New()
	predicate := tbl.Types().Register("PREDICATE", NODE)
	concept := tbl.Types().Register("CONCEPT", NODE)
	eval := tbl.Types().Register("EVAL", LINK)

	pA, _ := tbl.Add(NewNode(predicate, "pA"))
	pB, _ := tbl.Add(NewNode(predicate, "pB"))
	x, _ := tbl.Add(NewNode(concept, "x"))
	y, _ := tbl.Add(NewNode(concept, "y"))

	l1, _ := tbl.Add(NewLink(eval, []Handle{pA, x}))
	l2, _ := tbl.Add(NewLink(eval, []Handle{pA, y}))
	_, _ = tbl.Add(NewLink(eval, []Handle{pB, x}))

	spec := []OutgoingSpec{
		{Handle: &pA},
		{Type: &TypeConstraint{Type: concept}},
	}
	result, err := tbl.GetByOutgoing(spec, eval, false, nil)
	require.NoError(t, err)

	want := newHandleSet()
	want.add(l1)
	want.add(l2)
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("GetByOutgoing mismatch (-want +got):\n%s", diff)
	}
}

// S5: zero-arity compound query.
func TestGetByOutgoing_ZeroArity(t *testing.T) {
	tbl := New()
	set := tbl.Types().Register("SET", LINK)

	h, err := tbl.Add(NewLink(set, nil))
	require.NoError(t, err)

	result, err := tbl.GetByOutgoing(nil, set, false, nil)
	require.NoError(t, err)
	assert.True(t, result.has(h))
	assert.Len(t, result, 1)
}

// L4: a constrained slot with no candidates short-circuits to empty
// without error.
func TestGetByOutgoing_ShortCircuit(t *testing.T) {
	tbl, concept, list := newTestTable()
	_, err := tbl.Add(NewNode(concept, "only"))
	require.NoError(t, err)

	missing := Handle(12345)
	spec := []OutgoingSpec{{Handle: &missing}, {}}
	result, err := tbl.GetByOutgoing(spec, list, false, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

// A fully unconstrained compound query is ill-posed.
func TestGetByOutgoing_InvalidQuery(t *testing.T) {
	tbl, _, list := newTestTable()
	_, err := tbl.GetByOutgoing([]OutgoingSpec{{}, {}}, list, false, nil)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

// §4.8.3: a name constraint without a type constraint is rejected.
func TestGetByNames_NameWithoutTypeIsInvalid(t *testing.T) {
	tbl, _, list := newTestTable()
	name := "x"
	_, err := tbl.GetByNames([]OutgoingSpec{{Name: &name}}, list, false)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestGetByNames_Compound(t *testing.T) {
	tbl := New()
	concept := tbl.Types().Register("CONCEPT", NODE)
	list := tbl.Types().Register("LIST", LINK)

	x, _ := tbl.Add(NewNode(concept, "x"))
	y, _ := tbl.Add(NewNode(concept, "y"))
	l1, err := tbl.Add(NewLink(list, []Handle{x, y}))
	require.NoError(t, err)

	name := "x"
	spec := []OutgoingSpec{
		{Name: &name, Type: &TypeConstraint{Type: concept}},
		{Type: &TypeConstraint{Type: concept}},
	}
	result, err := tbl.GetByNames(spec, list, false)
	require.NoError(t, err)
	assert.True(t, result.has(l1))
}

// S6: decay sweep cascades to links that would otherwise dangle.
func TestPurgeDecayed_Cascades(t *testing.T) {
	tbl, concept, list := newTestTable()

	h1, _ := tbl.Add(NewNode(concept, "a"))
	h2, _ := tbl.Add(NewNode(concept, "b"))
	l, err := tbl.Add(NewLink(list, []Handle{h1, h2}))
	require.NoError(t, err)

	tbl.Resolve(h2).MarkDecayed()
	purged := tbl.PurgeDecayed()

	assert.Equal(t, 2, purged)
	assert.False(t, tbl.Valid(h2))
	assert.False(t, tbl.Valid(l))
	assert.True(t, tbl.Valid(h1))
}

func TestClear_EmptiesTable(t *testing.T) {
	tbl, concept, list := newTestTable()
	h1, _ := tbl.Add(NewNode(concept, "a"))
	h2, _ := tbl.Add(NewNode(concept, "b"))
	_, err := tbl.Add(NewLink(list, []Handle{h1, h2}))
	require.NoError(t, err)

	tbl.Clear()
	assert.True(t, tbl.IsCleared())
}

func TestPurgeAll_NotifiesStatistics(t *testing.T) {
	stats := NewCountingStatistics()
	tbl := New(WithStatistics(stats))
	concept := tbl.Types().Register("CONCEPT", NODE)
	_, err := tbl.Add(NewNode(concept, "a"))
	require.NoError(t, err)

	tbl.PurgeAll()
	assert.True(t, tbl.IsCleared())
	assert.Equal(t, 1, stats.Removed[concept])
}

func TestGetRandom_EmptyTable(t *testing.T) {
	tbl := New()
	assert.Nil(t, tbl.GetRandom())
}

func TestGetRandom_Deterministic(t *testing.T) {
	tbl := New(WithRNG(NewDefaultRNG(42)))
	concept := tbl.Types().Register("CONCEPT", NODE)
	for _, name := range []string{"a", "b", "c"} {
		_, err := tbl.Add(NewNode(concept, name))
		require.NoError(t, err)
	}
	a := tbl.GetRandom()
	require.NotNil(t, a)
	assert.Equal(t, concept, a.Type)
}
