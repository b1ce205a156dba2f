package atomspace

// typeIndex maps a type to the set of handles of that exact type (C6).
// Subclass queries are served by the query engine unioning across
// childrenRecursive(t) ∪ {t}; this index never does the union itself.
type typeIndex struct {
	byType map[Type]handleSet
}

func newTypeIndex() *typeIndex {
	return &typeIndex{byType: make(map[Type]handleSet)}
}

func (idx *typeIndex) insert(a *Atom) {
	s, ok := idx.byType[a.Type]
	if !ok {
		s = newHandleSet()
		idx.byType[a.Type] = s
	}
	s.add(a.Handle)
}

func (idx *typeIndex) remove(a *Atom) {
	s, ok := idx.byType[a.Type]
	if !ok {
		return
	}
	s.remove(a.Handle)
	if len(s) == 0 {
		delete(idx.byType, a.Type)
	}
}

func (idx *typeIndex) get(t Type) handleSet {
	return idx.byType[t]
}

func (idx *typeIndex) size() int {
	n := 0
	for _, s := range idx.byType {
		n += len(s)
	}
	return n
}

// removeWhere drops every handle for which keep is true, used by the decay
// sweep (§4.9). Atoms themselves are resolved by the caller.
func (idx *typeIndex) removeWhere(resolve func(Handle) *Atom, keep func(*Atom) bool) {
	for t, s := range idx.byType {
		for h := range s {
			if a := resolve(h); a != nil && keep(a) {
				delete(s, h)
			}
		}
		if len(s) == 0 {
			delete(idx.byType, t)
		}
	}
}
