package atomspace

import "sync"

// noCopy documents (and lets `go vet`'s copylocks check enforce) that
// AtomTable must never be copied after first use — the Go analogue of the
// original's throwing copy-constructor and operator= (ErrNotCopyable in
// spec.md §7). Embedding it is the standard library's own idiom (see
// sync.WaitGroup's noCopy field).
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AtomTable is the in-memory hypergraph store: the mutation engine (C12)
// wired to the full index set (C4-C10) over a handle registry (C1) and
// type registry (C2). All mutation goes through a single exclusive lock.
// Queries take the same exclusive lock, so they do not run concurrently
// with each other or with writes.
type AtomTable struct {
	_ noCopy

	mu sync.Mutex

	handles *HandleRegistry
	types   *TypeRegistry

	nodeIdx       *nodeIndex
	linkIdx       *linkIndex
	typeIdx       *typeIndex
	incomingIdx   *incomingIndex
	targetTypeIdx *targetTypeIndex
	importanceIdx *importanceIndex
	predicateIdx  *predicateIndex

	logger Logger
	rng    RNG
	stats  StatisticsMonitor

	liveCount int
}

// Option configures a new AtomTable.
type Option func(*AtomTable)

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(t *AtomTable) { t.logger = l }
}

// WithRNG overrides the default math/rand-backed RNG.
func WithRNG(r RNG) Option {
	return func(t *AtomTable) { t.rng = r }
}

// WithStatistics enables the optional statistics monitor collaborator
// (§6), mirroring the original's useDSA construction flag.
func WithStatistics(s StatisticsMonitor) Option {
	return func(t *AtomTable) { t.stats = s }
}

// WithTypeRegistry shares an existing TypeRegistry across tables, instead
// of minting a private one. Useful for tests and for a persistence
// collaborator that rehydrates several tables against one lattice.
func WithTypeRegistry(r *TypeRegistry) Option {
	return func(t *AtomTable) { t.types = r }
}

// WithHandleRegistry shares an existing HandleRegistry across tables,
// instead of minting a private one. spec.md §5 describes the handle
// registry as process-wide, unlike the per-table indices; pass the same
// HandleRegistry to several New calls to get that behavior literally, with
// handles guaranteed unique across every table sharing it.
func WithHandleRegistry(r *HandleRegistry) Option {
	return func(t *AtomTable) { t.handles = r }
}

// New constructs an empty AtomTable and subscribes it to the type
// registry's type-added signal before returning.
func New(opts ...Option) *AtomTable {
	t := &AtomTable{
		nodeIdx:       newNodeIndex(),
		linkIdx:       newLinkIndex(),
		typeIdx:       newTypeIndex(),
		incomingIdx:   newIncomingIndex(),
		targetTypeIdx: newTargetTypeIndex(),
		importanceIdx: newImportanceIndex(),
		predicateIdx:  newPredicateIndex(),
		logger:        &noopLogger{},
		rng:           NewDefaultRNG(1),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.types == nil {
		t.types = NewTypeRegistry()
	}
	if t.handles == nil {
		t.handles = NewHandleRegistry()
	}
	// Maps grow on demand, so there is no storage to resize for the
	// type-keyed indices; the subscription still exists so the signal's
	// ordering contract is a first-class, observable part of the design
	// rather than an accident of map semantics.
	t.types.Subscribe(func(Type) {})
	return t
}

// Types exposes the table's type registry so callers can register new
// types and query isA/childrenRecursive.
func (t *AtomTable) Types() *TypeRegistry { return t.types }

// UsesStatistics reports whether a statistics collaborator is wired in,
// mirroring AtomTable::usesDSA.
func (t *AtomTable) UsesStatistics() bool { return t.stats != nil }

// Size returns the number of live atoms.
func (t *AtomTable) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveCount
}

// IsCleared reports whether the live count is zero and the type,
// importance, target-type and predicate indices are empty (mirrors
// AtomTable::isCleared, so a leak in those indices is caught even if size
// itself were wrong). The node, link and incoming indices are not checked.
func (t *AtomTable) IsCleared() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveCount == 0 &&
		t.typeIdx.size() == 0 &&
		t.importanceIdx.size() == 0 &&
		t.targetTypeIdx.size() == 0 &&
		t.predicateIdx.size() == 0
}

func (t *AtomTable) resolve(h Handle) *Atom {
	return t.handles.resolve(h)
}

// Resolve returns the atom named by h, or nil if it does not resolve.
func (t *AtomTable) Resolve(h Handle) *Atom {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolve(h)
}

// Valid reports whether h resolves to a live atom.
func (t *AtomTable) Valid(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handles.valid(h)
}

// ForEachByType visits every live atom of type t (and its descendants when
// subclass is true) in unspecified order.
func (t *AtomTable) ForEachByType(ty Type, subclass bool, visitor func(*Atom)) {
	t.mu.Lock()
	handles := t.collectByType(ty, subclass)
	atoms := make([]*Atom, 0, len(handles))
	for h := range handles {
		if a := t.resolve(h); a != nil {
			atoms = append(atoms, a)
		}
	}
	t.mu.Unlock()
	for _, a := range atoms {
		visitor(a)
	}
}

// LogByType visits every live atom of type t through logger at debug
// level, the Go analogue of AtomTable::log/AtomTable::print.
func (t *AtomTable) LogByType(logger Logger, ty Type, subclass bool) {
	t.ForEachByType(ty, subclass, func(a *Atom) {
		logger.Debug("atom", "handle", a.Handle.String(), "value", a.String())
	})
}

// GetRandom samples uniformly from every live atom (not every type): it
// draws x in [0, size) from the table's RNG and returns the x-th atom in
// type-iteration order, per spec.md §4.11. It returns nil if the table is
// empty.
func (t *AtomTable) GetRandom() *Atom {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.liveCount == 0 {
		return nil
	}
	x := t.rng.Randint(t.liveCount)
	var found *Atom
	handles := t.collectByType(ATOM, true)
	for h := range handles {
		if x == 0 {
			found = t.resolve(h)
			break
		}
		x--
	}
	return found
}
