package atomspace

// TypeConstraint narrows a compound query slot to a target type, honoring
// subclassing independently per slot (§4.8.2).
type TypeConstraint struct {
	Type     Type
	Subclass bool
}

// OutgoingSpec constrains one position of a link's outgoing tuple for the
// compound queries of §4.8.2/§4.8.3. A nil field leaves that dimension of
// the slot unconstrained; a slot with every field nil is simply dropped
// from consideration (§4.8.2 step 3).
type OutgoingSpec struct {
	// Handle pins this slot to an exact handle. Only GetByOutgoing reads
	// it; GetByNames ignores it.
	Handle *Handle
	// Type constrains this slot's target type (and, with Subclass, its
	// descendants).
	Type *TypeConstraint
	// Name constrains this slot's outgoing atom to a node with this exact
	// name. Only GetByNames reads it. A non-empty Name requires Type to be
	// non-nil (§4.8.3). An empty name, in a slot that also has a Type,
	// requires the slot to hold a link rather than a node; without a Type
	// an empty name leaves the slot unconstrained.
	Name *string
}

// GetByType returns every live atom of type ty, and its descendants when
// subclass is true (§4.8.1).
func (t *AtomTable) GetByType(ty Type, subclass bool) handleSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.collectByType(ty, subclass)
}

// GetByName looks up the single node of exact type ty named name
// (§4.8.1). It returns UndefinedHandle if there is no such node.
func (t *AtomTable) GetByName(ty Type, name string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nodeIdx.get(ty, name)
}

// GetByOutgoingExact looks up the single link of exact type ty over the
// exact outgoing tuple (§4.8.1). It returns UndefinedHandle if there is
// no such link.
func (t *AtomTable) GetByOutgoingExact(ty Type, outgoing []Handle) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.linkIdx.get(ty, outgoing)
}

// GetByPredicate returns every live link whose head — its first outgoing
// member, when that member resolves to a node — is predicate (C10). This
// is the lookup EVAL-style links exist to serve (e.g. (EVAL (PREDICATE
// "pA") (CONCEPT "x")) indexed under pA's handle), and is what makes C11 a
// genuine combination of C4-C10 rather than C4-C9 (§2).
func (t *AtomTable) GetByPredicate(predicate Handle) handleSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.predicateIdx.get(predicate).clone()
}

func (t *AtomTable) linkTypeMatches(a *Atom, linkType Type, subclass bool) bool {
	if a.Type == linkType {
		return true
	}
	return subclass && t.types.IsA(a.Type, linkType)
}

// GetByOutgoing is the compound positional query of §4.8.2. spec has one
// entry per outgoing position (its length is the query's arity); a spec
// slot with every field nil is unconstrained. versionFilter may be nil to
// accept every truth value.
func (t *AtomTable) GetByOutgoing(spec []OutgoingSpec, linkType Type, subclass bool, versionFilter VersionFilter) (handleSet, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := len(spec)

	// Fast path: every slot pins an exact, valid handle and linkType is
	// unambiguous (no subclassing) — this is just an exact-match lookup.
	if t.types.IsA(linkType, LINK) && !subclass {
		tuple := make([]Handle, k)
		exact := true
		for i, s := range spec {
			if s.Handle == nil || !t.handles.valid(*s.Handle) {
				exact = false
				break
			}
			tuple[i] = *s.Handle
		}
		if exact {
			h := t.linkIdx.get(linkType, tuple)
			if h == UndefinedHandle {
				return newHandleSet(), nil
			}
			a := t.resolve(h)
			if !versionFilter.accepts(a.TruthValue()) {
				return newHandleSet(), nil
			}
			out := newHandleSet()
			out.add(h)
			return out, nil
		}
	}

	// Zero-arity path: no outgoing slots to constrain, so just filter the
	// link-type population by empty arity and versionFilter.
	if t.types.IsA(linkType, LINK) && k == 0 {
		out := newHandleSet()
		for h := range t.collectByType(linkType, subclass) {
			a := t.resolve(h)
			if a != nil && a.Kind == LinkKind && a.Arity() == 0 && versionFilter.accepts(a.TruthValue()) {
				out.add(h)
			}
		}
		return out, nil
	}

	var sets []handleSet
	constrained := make([]bool, k)
	for i, s := range spec {
		switch {
		case s.Handle != nil:
			constrained[i] = true
			si := newHandleSet()
			h := *s.Handle
			for l := range t.incomingIdx.get(h) {
				la := t.resolve(l)
				if la != nil && la.Arity() == k && la.Outgoing[i] == h {
					si.add(l)
				}
			}
			if len(si) == 0 {
				return newHandleSet(), nil
			}
			sets = append(sets, si)
		case s.Type != nil:
			constrained[i] = true
			si := t.targetTypeSet(i, *s.Type)
			if len(si) == 0 {
				return newHandleSet(), nil
			}
			sets = append(sets, si)
		default:
			// Unconstrained slot: not added to the candidate list.
		}
	}

	if len(sets) == 0 {
		return nil, ErrInvalidQuery
	}

	if !(linkType == ATOM && subclass) {
		for i, si := range sets {
			sets[i] = si.filter(func(h Handle) bool {
				a := t.resolve(h)
				return a != nil && t.linkTypeMatches(a, linkType, subclass)
			})
		}
	}

	candidates := intersect(sets)
	out := newHandleSet()
	for h := range candidates {
		a := t.resolve(h)
		if a == nil || a.Kind != LinkKind || a.Arity() != k {
			continue
		}
		if !versionFilter.accepts(a.TruthValue()) {
			continue
		}
		if t.satisfiesSpec(a, spec, constrained) {
			out.add(h)
		}
	}
	return out, nil
}

// targetTypeSet returns the union, across tc.Type and (if tc.Subclass)
// every descendant, of links whose i-th outgoing member has that exact
// type — the type-constrained branch of §4.8.2 step 3.
func (t *AtomTable) targetTypeSet(i int, tc TypeConstraint) handleSet {
	out := t.targetTypeIdx.get(i, tc.Type).clone()
	if tc.Subclass {
		for _, child := range t.types.ChildrenRecursive(tc.Type) {
			out = out.union(t.targetTypeIdx.get(i, child))
		}
	}
	return out
}

func (t *AtomTable) satisfiesSpec(a *Atom, spec []OutgoingSpec, constrained []bool) bool {
	for i, s := range spec {
		if !constrained[i] {
			continue
		}
		target := t.resolve(a.Outgoing[i])
		if target == nil {
			return false
		}
		if s.Handle != nil && target.Handle != *s.Handle {
			return false
		}
		if s.Type != nil {
			if target.Type != s.Type.Type && !(s.Type.Subclass && t.types.IsA(target.Type, s.Type.Type)) {
				return false
			}
		}
	}
	return true
}

// GetByNames is the compound by-name query of §4.8.3: like GetByOutgoing,
// but a slot constrains the name (and type) of the outgoing atom at that
// position instead of a handle; a slot's Handle field is ignored. A slot
// with a non-empty Name and no Type is rejected with ErrInvalidQuery.
func (t *AtomTable) GetByNames(spec []OutgoingSpec, linkType Type, subclass bool) (handleSet, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := len(spec)
	for _, s := range spec {
		if s.Name != nil && *s.Name != "" && s.Type == nil {
			return nil, ErrInvalidQuery
		}
	}

	var sets []handleSet
	constrained := make([]bool, k)
	for i, s := range spec {
		switch {
		case s.Name != nil && *s.Name != "":
			constrained[i] = true
			si := t.nameSet(i, k, *s.Name, *s.Type)
			if len(si) == 0 {
				return newHandleSet(), nil
			}
			sets = append(sets, si)
		case s.Type != nil:
			constrained[i] = true
			si := t.targetTypeSet(i, *s.Type)
			if len(si) == 0 {
				return newHandleSet(), nil
			}
			sets = append(sets, si)
		default:
		}
	}

	if len(sets) == 0 {
		return nil, ErrInvalidQuery
	}

	if !(linkType == ATOM && subclass) {
		for i, si := range sets {
			sets[i] = si.filter(func(h Handle) bool {
				a := t.resolve(h)
				return a != nil && t.linkTypeMatches(a, linkType, subclass)
			})
		}
	}

	candidates := intersect(sets)
	out := newHandleSet()
	for h := range candidates {
		a := t.resolve(h)
		if a == nil || a.Kind != LinkKind || a.Arity() != k {
			continue
		}
		if t.satisfiesNameSpec(a, spec, constrained) {
			out.add(h)
		}
	}
	return out, nil
}

// nameSet unions per-subtype node lookups for name across tc.Type and its
// descendants (when tc.Subclass), then expands each matching node handle
// to the links that reference it in position i, mirroring GetByOutgoing's
// handle-specified branch.
func (t *AtomTable) nameSet(i, k int, name string, tc TypeConstraint) handleSet {
	types := []Type{tc.Type}
	if tc.Subclass {
		types = append(types, t.types.ChildrenRecursive(tc.Type)...)
	}
	out := newHandleSet()
	for _, ty := range types {
		h := t.nodeIdx.get(ty, name)
		if h == UndefinedHandle {
			continue
		}
		for l := range t.incomingIdx.get(h) {
			la := t.resolve(l)
			if la != nil && la.Arity() == k && la.Outgoing[i] == h {
				out.add(l)
			}
		}
	}
	return out
}

func (t *AtomTable) satisfiesNameSpec(a *Atom, spec []OutgoingSpec, constrained []bool) bool {
	for i, s := range spec {
		if !constrained[i] {
			continue
		}
		target := t.resolve(a.Outgoing[i])
		if target == nil {
			return false
		}
		if s.Name != nil {
			if *s.Name == "" {
				if target.Kind != LinkKind {
					return false
				}
				continue
			}
			if target.Kind != NodeKind || target.Name != *s.Name {
				return false
			}
		}
		if s.Type != nil {
			if target.Type != s.Type.Type && !(s.Type.Subclass && t.types.IsA(target.Type, s.Type.Type)) {
				return false
			}
		}
	}
	return true
}
