package atomspace

// incomingIndex maps a handle to the set of link-handles whose outgoing
// tuple references it (C7). It is the derived invariant of I3: maintained
// purely by the mutation engine as links are added and extracted.
type incomingIndex struct {
	byHandle map[Handle]handleSet
}

func newIncomingIndex() *incomingIndex {
	return &incomingIndex{byHandle: make(map[Handle]handleSet)}
}

// insert adds a (a link) to the incoming set of every handle in its
// outgoing tuple. A no-op for nodes, since only links have an outgoing
// tuple.
func (idx *incomingIndex) insert(a *Atom) {
	if a.Kind != LinkKind {
		return
	}
	for _, target := range a.Outgoing {
		s, ok := idx.byHandle[target]
		if !ok {
			s = newHandleSet()
			idx.byHandle[target] = s
		}
		s.add(a.Handle)
	}
}

func (idx *incomingIndex) remove(a *Atom) {
	if a.Kind != LinkKind {
		return
	}
	for _, target := range a.Outgoing {
		s, ok := idx.byHandle[target]
		if !ok {
			continue
		}
		s.remove(a.Handle)
		if len(s) == 0 {
			delete(idx.byHandle, target)
		}
	}
}

// get returns the incoming set of h, which is empty (not nil) if h has no
// referrers, so callers may range over it unconditionally.
func (idx *incomingIndex) get(h Handle) handleSet {
	if s, ok := idx.byHandle[h]; ok {
		return s
	}
	return newHandleSet()
}
