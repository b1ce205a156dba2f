package atomspace

// Kind discriminates the two Atom variants. The source distinguishes Node
// and Link by runtime downcast (dynamic_cast<Node*>/dynamic_cast<Link*> in
// AtomTable.cc); here the variant is a tagged struct instead, and every
// query matches on Kind rather than casting.
type Kind int

const (
	// NodeKind atoms carry (Type, Name).
	NodeKind Kind = iota
	// LinkKind atoms carry (Type, Outgoing).
	LinkKind
)

func (k Kind) String() string {
	if k == LinkKind {
		return "Link"
	}
	return "Node"
}

// Atom is the sum of the Node and Link variants plus the mutable belief
// state shared by both (§3). Structural identity (Type+Name for a node,
// Type+Outgoing for a link) is immutable once the atom is live; truth
// value, importance, and the removal/decay flags are the only fields a
// caller may mutate in place.
type Atom struct {
	Handle Handle
	Kind   Kind
	Type   Type

	// Name is meaningful only when Kind == NodeKind.
	Name string
	// Outgoing is meaningful only when Kind == LinkKind. Order is
	// significant and duplicates are permitted (§3).
	Outgoing []Handle

	truth      TruthValue
	importance Importance

	marked  bool // set by extract before the mutation completes (§3 lifecycle)
	decayed bool // set by the external decay policy

	table *AtomTable // back-reference; nil unless live in exactly one table
}

// NewNode returns a candidate Node atom. It is not yet live in any table.
func NewNode(t Type, name string) *Atom {
	return &Atom{Kind: NodeKind, Type: t, Name: name, truth: NullTruthValue()}
}

// NewLink returns a candidate Link atom over the given ordered outgoing
// tuple. Arity is len(outgoing); zero-length tuples are permitted (§3).
func NewLink(t Type, outgoing []Handle) *Atom {
	og := append([]Handle(nil), outgoing...)
	return &Atom{Kind: LinkKind, Type: t, Outgoing: og, truth: NullTruthValue()}
}

// Arity returns len(Outgoing) for a link, or 0 for a node.
func (a *Atom) Arity() int {
	if a.Kind != LinkKind {
		return 0
	}
	return len(a.Outgoing)
}

// TruthValue returns the atom's current belief.
func (a *Atom) TruthValue() TruthValue {
	if a.truth == nil {
		return NullTruthValue()
	}
	return a.truth
}

// SetTruthValue directly assigns a's belief, bypassing merge. Used when
// constructing a fresh candidate; when Add finds a pre-existing atom, it
// merges the truth values through TruthValue.Merge (§4.10) instead.
func (a *Atom) SetTruthValue(tv TruthValue) {
	a.truth = tv
}

// Importance returns the atom's current attention value.
func (a *Atom) Importance() Importance {
	return a.importance
}

// SetImportance updates a's attention value and repositions it in the
// owning table's importance index (C9), if live.
func (a *Atom) SetImportance(imp Importance) {
	old := a.importance
	a.importance = imp
	if a.table != nil {
		a.table.importanceIdx.reposition(a.Handle, old, imp)
	}
}

// MarkDecayed flags a for the next purgeDecayed sweep (§4.9).
func (a *Atom) MarkDecayed() { a.decayed = true }

// IsDecayed reports whether the external decay policy has flagged a.
func (a *Atom) IsDecayed() bool { return a.decayed }

// IsMarkedForRemoval reports whether extract has begun removing a.
func (a *Atom) IsMarkedForRemoval() bool { return a.marked }

// Table returns the AtomTable a is live in, or nil.
func (a *Atom) Table() *AtomTable { return a.table }

// structuralKey returns the identity used for deduplication (I1): for a
// node, (Type, Name); for a link, (Type, Outgoing) with order significant.
func (a *Atom) structuralKey() interface{} {
	if a.Kind == NodeKind {
		return nodeKey{Type: a.Type, Name: a.Name}
	}
	return linkKey{Type: a.Type, Outgoing: encodeOutgoing(a.Outgoing)}
}

func (a *Atom) String() string {
	if a.Kind == NodeKind {
		return a.Handle.String() + ": " + a.Name
	}
	return a.Handle.String() + ": " + kindLinkString(a)
}

func kindLinkString(a *Atom) string {
	s := "("
	for i, h := range a.Outgoing {
		if i > 0 {
			s += " "
		}
		s += h.String()
	}
	return s + ")"
}
