package atomspace

// targetTypeIndex keys by (outgoing position, target type) and supports
// positional-type queries without scanning every link (C8). Subclass
// expansion across a target type's descendants is done by the query
// engine, which unions childrenRecursive(t) ∪ {t} before calling get.
type targetTypeIndex struct {
	byPosition []map[Type]handleSet // byPosition[i][targetType] = link handles
}

func newTargetTypeIndex() *targetTypeIndex {
	return &targetTypeIndex{}
}

func (idx *targetTypeIndex) ensureArity(n int) {
	for len(idx.byPosition) < n {
		idx.byPosition = append(idx.byPosition, make(map[Type]handleSet))
	}
}

// insert indexes link a; resolve must return the atom for any handle in
// a.Outgoing.
func (idx *targetTypeIndex) insert(a *Atom, resolve func(Handle) *Atom) {
	if a.Kind != LinkKind {
		return
	}
	idx.ensureArity(len(a.Outgoing))
	for i, h := range a.Outgoing {
		target := resolve(h)
		if target == nil {
			continue
		}
		m := idx.byPosition[i]
		s, ok := m[target.Type]
		if !ok {
			s = newHandleSet()
			m[target.Type] = s
		}
		s.add(a.Handle)
	}
}

func (idx *targetTypeIndex) remove(a *Atom, resolve func(Handle) *Atom) {
	if a.Kind != LinkKind {
		return
	}
	for i, h := range a.Outgoing {
		if i >= len(idx.byPosition) {
			continue
		}
		target := resolve(h)
		if target == nil {
			continue
		}
		m := idx.byPosition[i]
		s, ok := m[target.Type]
		if !ok {
			continue
		}
		s.remove(a.Handle)
		if len(s) == 0 {
			delete(m, target.Type)
		}
	}
}

// get returns links whose i-th outgoing member has exact type t.
func (idx *targetTypeIndex) get(i int, t Type) handleSet {
	if i >= len(idx.byPosition) {
		return newHandleSet()
	}
	return idx.byPosition[i][t]
}

func (idx *targetTypeIndex) size() int {
	n := 0
	for _, m := range idx.byPosition {
		for _, s := range m {
			n += len(s)
		}
	}
	return n
}
