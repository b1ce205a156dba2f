// Package persist is the optional persistence collaborator of spec.md §6:
// it may pre-assign handles before add, and the core commits only that
// handles are stable across a save/load round trip.
package persist

import (
	"context"

	"github.com/opencog/atomtable/atomspace"
)

// Store is the persistence collaborator consumed by the core. It is
// agnostic to how the core represents atoms in memory; it only needs to
// save and rehydrate them, handle included, so a reloaded atom can be
// re-inserted with its original identity.
type Store interface {
	// SaveAtom durably records a (already-live) atom.
	SaveAtom(ctx context.Context, a *atomspace.Atom) error
	// DeleteAtom removes a previously saved atom's record.
	DeleteAtom(ctx context.Context, h atomspace.Handle) error
	// LoadAll returns every saved atom, in an order suitable for re-adding
	// directly to a fresh AtomTable (nodes before the links that
	// reference them).
	LoadAll(ctx context.Context) ([]*atomspace.Atom, error)
	// Close releases any resources held by the store.
	Close() error
}
