package atomspace

import "fmt"

// collectByType unions byType(t) with byType of every descendant when
// subclass is true. Callers hold t.mu.
func (t *AtomTable) collectByType(ty Type, subclass bool) handleSet {
	out := t.typeIdx.get(ty).clone()
	if subclass {
		for _, child := range t.types.ChildrenRecursive(ty) {
			out = out.union(t.typeIdx.get(child))
		}
	}
	return out
}

// insertIntoIndices adds a to every secondary index. Called only once a
// is fully validated and registered with a live handle.
func (t *AtomTable) insertIntoIndices(a *Atom) {
	t.nodeIdx.insert(a)
	t.linkIdx.insert(a)
	t.typeIdx.insert(a)
	t.incomingIdx.insert(a)
	t.targetTypeIdx.insert(a, t.resolve)
	t.importanceIdx.insert(a)
	t.predicateIdx.insert(a, t.resolve)
}

// removeFromIndices drops a from every secondary index, the inverse of
// insertIntoIndices.
func (t *AtomTable) removeFromIndices(a *Atom) {
	t.nodeIdx.remove(a)
	t.linkIdx.remove(a)
	t.typeIdx.remove(a)
	t.incomingIdx.remove(a)
	t.targetTypeIdx.remove(a, t.resolve)
	t.importanceIdx.remove(a)
	t.predicateIdx.remove(a, t.resolve)
}

// Add inserts atom, the mutation engine's entry point (§4.9). If a
// structurally-equal atom already lives in the table, add merges truth
// values into the existing atom and returns its handle instead of
// creating a duplicate (I1). A link naming a handle that does not resolve
// in the table's handle registry is rejected with ErrInvalidLink (I2);
// when that registry is shared (WithHandleRegistry), a handle live in a
// sibling table resolves and is accepted.
func (t *AtomTable) Add(atom *Atom) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if atom.table != nil {
		return atom.Handle, nil
	}

	var existing Handle
	if atom.Kind == NodeKind {
		existing = t.nodeIdx.get(atom.Type, atom.Name)
	} else {
		existing = t.linkIdx.get(atom.Type, atom.Outgoing)
	}
	if existing != UndefinedHandle {
		if !atom.Handle.IsUndefined() && atom.Handle != existing {
			return UndefinedHandle, ErrHandleAlreadyAssigned
		}
		prior := t.resolve(existing)
		prior.truth = prior.TruthValue().Merge(atom.TruthValue())
		return existing, nil
	}

	if atom.Kind == LinkKind {
		for _, target := range atom.Outgoing {
			if !t.handles.valid(target) {
				return UndefinedHandle, fmt.Errorf("%w: %s", ErrInvalidLink, target)
			}
		}
	}

	h := t.handles.register(atom)
	committed := false
	defer func() {
		if !committed {
			t.removeFromIndices(atom)
			t.handles.unregister(h)
			atom.Handle = UndefinedHandle
		}
	}()

	t.insertIntoIndices(atom)
	atom.table = t
	committed = true
	t.liveCount++
	if t.stats != nil {
		t.stats.OnAdd(atom)
	}
	t.logger.Fine("atom added", "handle", h.String(), "type", t.types.Name(atom.Type))
	return h, nil
}

// Extract computes the set of handles that would be removed by deleting
// handle, without deleting them (§4.9). When recursive is true, every
// link that would be left dangling is extracted first, bottom-up. If,
// after that recursion, some other atom still refers to handle, the
// whole extraction aborts: Extract unmarks the atom, logs a warning, and
// returns an empty set — the NotRemovable propagation policy (§7), not
// an error.
func (t *AtomTable) Extract(handle Handle, recursive bool) handleSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.extractLocked(handle, recursive)
}

func (t *AtomTable) extractLocked(handle Handle, recursive bool) handleSet {
	a := t.resolve(handle)
	if a == nil || a.marked {
		return newHandleSet()
	}
	a.marked = true

	result := newHandleSet()
	if recursive {
		referrers := t.incomingIdx.get(handle).clone()
		for h := range referrers {
			linker := t.resolve(h)
			if linker == nil || linker.marked {
				continue
			}
			result = result.union(t.extractLocked(h, true))
		}
	}

	if len(t.incomingIdx.get(handle)) > 0 {
		a.marked = false
		t.logger.Warn("extract aborted: atom still has referrers",
			"handle", handle.String(), "incoming", t.incomingIdx.get(handle).slice())
		return newHandleSet()
	}

	t.removeFromIndices(a)
	a.table = nil
	t.liveCount--
	result.add(handle)
	return result
}

// RemoveExtracted finalizes a set of handles previously returned by
// Extract: it notifies the statistics collaborator and unregisters each
// handle so it never resolves again (§4.9's two-phase extract/finalize
// split).
func (t *AtomTable) RemoveExtracted(set handleSet) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for h := range set {
		a := t.resolve(h)
		if a == nil {
			continue
		}
		if t.stats != nil {
			t.stats.OnRemove(a)
		}
		t.logger.Fine("atom removed", "handle", h.String())
		t.handles.unregister(h)
	}
}

// Remove deletes handle in one call, combining Extract and RemoveExtracted.
// It reports whether anything was actually removed: false means either
// handle did not resolve, or the removal was aborted as NotRemovable.
func (t *AtomTable) Remove(handle Handle, recursive bool) bool {
	t.mu.Lock()
	set := t.extractLocked(handle, recursive)
	t.mu.Unlock()
	if len(set) == 0 {
		return false
	}
	t.RemoveExtracted(set)
	return true
}

// PurgeDecayed sweeps every atom flagged by MarkDecayed and deletes it
// immediately, bypassing the incoming-set check that Extract enforces
// (I4) once an atom is marked for decay (§7). Any link that would be left referencing a purged atom is
// cascaded into the same sweep, since a dangling outgoing handle can
// never be exposed by a live index (I2).
func (t *AtomTable) PurgeDecayed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	doomed := newHandleSet()
	for h := range t.collectByType(ATOM, true) {
		if a := t.resolve(h); a != nil && a.IsDecayed() {
			doomed.add(h)
		}
	}

	for {
		grew := false
		for h := range doomed {
			for referrer := range t.incomingIdx.get(h) {
				if !doomed.has(referrer) {
					doomed.add(referrer)
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	// typeIndex and importanceIndex expose bulk predicate-driven removal;
	// route the sweep through them instead of the per-atom path so they
	// stay genuinely exercised rather than merely maintained.
	isDoomed := func(a *Atom) bool { return doomed.has(a.Handle) }
	t.typeIdx.removeWhere(t.resolve, isDoomed)
	t.importanceIdx.removeWhere(t.resolve, isDoomed)

	for h := range doomed {
		a := t.resolve(h)
		if a == nil {
			continue
		}
		t.nodeIdx.remove(a)
		t.linkIdx.remove(a)
		t.incomingIdx.remove(a)
		t.targetTypeIdx.remove(a, t.resolve)
		t.predicateIdx.remove(a, t.resolve)
		a.table = nil
		t.liveCount--
		if t.stats != nil {
			t.stats.OnRemove(a)
		}
	}
	// Unregister only after every doomed atom has left the indices, so the
	// position-keyed indices can still resolve each link's outgoing atoms.
	for h := range doomed {
		t.handles.unregister(h)
	}
	t.logger.Fine("decay sweep complete", "purged", len(doomed))
	return len(doomed)
}

// Clear empties the table by repeatedly extracting any atom with no
// referrers, the non-cascading analogue of AtomTable::clear (§4.12). The
// hypergraph's acyclic reference structure (a link can only name handles
// that already existed at insertion time) guarantees a referrer-free
// atom always exists while the table is non-empty.
func (t *AtomTable) Clear() {
	for {
		t.mu.Lock()
		if t.liveCount == 0 {
			t.mu.Unlock()
			return
		}
		var victim Handle
		for h := range t.collectByType(ATOM, true) {
			if len(t.incomingIdx.get(h)) == 0 {
				victim = h
				break
			}
		}
		set := t.extractLocked(victim, false)
		t.mu.Unlock()
		t.RemoveExtracted(set)
	}
}

// PurgeAll empties the table in one pass, without regard to the
// incoming-set invariant: every live atom owned by this table is dropped
// from every index and unregistered from the handle registry, which may
// be shared with other tables. Use Clear instead when referential
// integrity of atoms outside this sweep matters.
func (t *AtomTable) PurgeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	// t.handles may be shared with other tables (WithHandleRegistry), so it
	// is never replaced wholesale: only this table's own atoms are
	// unregistered from it, leaving any sibling table's handles intact.
	for h := range t.collectByType(ATOM, true) {
		a := t.resolve(h)
		if a == nil {
			continue
		}
		if t.stats != nil {
			t.stats.OnRemove(a)
		}
		a.table = nil
		t.handles.unregister(h)
	}

	t.nodeIdx = newNodeIndex()
	t.linkIdx = newLinkIndex()
	t.typeIdx = newTypeIndex()
	t.incomingIdx = newIncomingIndex()
	t.targetTypeIdx = newTargetTypeIndex()
	t.importanceIdx = newImportanceIndex()
	t.predicateIdx = newPredicateIndex()
	t.liveCount = 0
}
