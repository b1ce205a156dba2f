package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencog/atomtable/atomspace"
)

func TestSQLiteStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	tbl := atomspace.New()
	concept := tbl.Types().Register("CONCEPT", atomspace.NODE)
	list := tbl.Types().Register("LIST", atomspace.LINK)

	a := atomspace.NewNode(concept, "cat")
	a.SetTruthValue(atomspace.SimpleTruthValue{Strength: 0.8, Confidence: 0.6})
	h1, err := tbl.Add(a)
	require.NoError(t, err)
	require.NoError(t, store.SaveAtom(ctx, a))

	link := atomspace.NewLink(list, []atomspace.Handle{h1})
	h2, err := tbl.Add(link)
	require.NoError(t, err)
	require.NoError(t, store.SaveAtom(ctx, link))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	fresh := atomspace.New(atomspace.WithTypeRegistry(tbl.Types()))
	for _, a := range loaded {
		if _, err := fresh.Add(a); err != nil {
			t.Fatalf("rehydrate atom %s: %v", a.Handle, err)
		}
	}

	require.Equal(t, 2, fresh.Size())
	require.True(t, fresh.Valid(h1))
	require.True(t, fresh.Valid(h2))

	tv := fresh.Resolve(h1).TruthValue().(atomspace.SimpleTruthValue)
	require.InDelta(t, 0.8, tv.Strength, 1e-9)
}

func TestSQLiteStore_DeleteAtom(t *testing.T) {
	store, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	concept := atomspace.Type(100)
	a := atomspace.NewNode(concept, "x")
	a.Handle = atomspace.Handle(1)
	require.NoError(t, store.SaveAtom(ctx, a))

	require.NoError(t, store.DeleteAtom(ctx, a.Handle))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}
