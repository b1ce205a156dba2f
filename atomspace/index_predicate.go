package atomspace

// predicateIndex is the reverse index from predicate-node membership to
// the link-handles that use it as their head (C10). A link's head is its
// first outgoing member; when that member is a node, the link is recorded
// under that node's handle. This mirrors EVAL-style links in the original
// source, e.g. (EVAL (PREDICATE "pA") (CONCEPT "x")), where pA's handle
// indexes the link.
type predicateIndex struct {
	byPredicate map[Handle]handleSet
}

func newPredicateIndex() *predicateIndex {
	return &predicateIndex{byPredicate: make(map[Handle]handleSet)}
}

func (idx *predicateIndex) head(a *Atom, resolve func(Handle) *Atom) (Handle, bool) {
	if a.Kind != LinkKind || len(a.Outgoing) == 0 {
		return UndefinedHandle, false
	}
	first := resolve(a.Outgoing[0])
	if first == nil || first.Kind != NodeKind {
		return UndefinedHandle, false
	}
	return first.Handle, true
}

func (idx *predicateIndex) insert(a *Atom, resolve func(Handle) *Atom) {
	h, ok := idx.head(a, resolve)
	if !ok {
		return
	}
	s, ok := idx.byPredicate[h]
	if !ok {
		s = newHandleSet()
		idx.byPredicate[h] = s
	}
	s.add(a.Handle)
}

func (idx *predicateIndex) remove(a *Atom, resolve func(Handle) *Atom) {
	h, ok := idx.head(a, resolve)
	if !ok {
		return
	}
	s, ok := idx.byPredicate[h]
	if !ok {
		return
	}
	s.remove(a.Handle)
	if len(s) == 0 {
		delete(idx.byPredicate, h)
	}
}

func (idx *predicateIndex) get(predicate Handle) handleSet {
	return idx.byPredicate[predicate]
}

func (idx *predicateIndex) size() int {
	n := 0
	for _, s := range idx.byPredicate {
		n += len(s)
	}
	return n
}
