package atomspace

// handleSet is an unordered set of handles, the currency the query engine
// (C11) intersects and unions. Named UnorderedHandleSet in the original
// source; here it's simply a map[Handle]struct{} with helper methods.
type handleSet map[Handle]struct{}

func newHandleSet() handleSet { return make(handleSet) }

func (s handleSet) add(h Handle)      { s[h] = struct{}{} }
func (s handleSet) remove(h Handle)   { delete(s, h) }
func (s handleSet) has(h Handle) bool { _, ok := s[h]; return ok }

func (s handleSet) clone() handleSet {
	out := make(handleSet, len(s))
	for h := range s {
		out[h] = struct{}{}
	}
	return out
}

// slice returns the set's members in unspecified order.
func (s handleSet) slice() []Handle {
	out := make([]Handle, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	return out
}

// intersect returns the common members of sets, or an empty set if sets is
// empty. Intersection proceeds from the smallest set outward to minimize
// work, mirroring the original's note that the Intersect collaborator
// (opencog/atomspace/Intersect.h) is the most expensive step.
func intersect(sets []handleSet) handleSet {
	if len(sets) == 0 {
		return newHandleSet()
	}
	smallest := 0
	for i, s := range sets {
		if len(s) < len(sets[smallest]) {
			smallest = i
		}
	}
	out := newHandleSet()
candidate:
	for h := range sets[smallest] {
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if !s.has(h) {
				continue candidate
			}
		}
		out.add(h)
	}
	return out
}

// filter returns the subset of s for which keep returns true.
func (s handleSet) filter(keep func(Handle) bool) handleSet {
	out := newHandleSet()
	for h := range s {
		if keep(h) {
			out.add(h)
		}
	}
	return out
}

func (s handleSet) union(other handleSet) handleSet {
	out := s.clone()
	for h := range other {
		out.add(h)
	}
	return out
}
