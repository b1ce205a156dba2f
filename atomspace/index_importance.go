package atomspace

import "sort"

// importanceEntry pairs a handle with its current attention value, so the
// index can be kept sorted by importance for decay/eviction sweeps.
type importanceEntry struct {
	handle     Handle
	importance Importance
}

// importanceIndex keeps atoms ordered by importance (C9), used by an
// external decay/eviction policy. Maintained as a sorted slice searched
// with sort.Search, the same technique the teacher uses to keep its
// sitemap ordered (crdt/ctree.go's siteIndex).
type importanceIndex struct {
	entries []importanceEntry
	byHandle map[Handle]Importance
}

func newImportanceIndex() *importanceIndex {
	return &importanceIndex{byHandle: make(map[Handle]Importance)}
}

func (idx *importanceIndex) search(imp Importance) int {
	return sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].importance >= imp
	})
}

func (idx *importanceIndex) insert(a *Atom) {
	imp := a.Importance()
	i := idx.search(imp)
	idx.entries = append(idx.entries, importanceEntry{})
	copy(idx.entries[i+1:], idx.entries[i:])
	idx.entries[i] = importanceEntry{handle: a.Handle, importance: imp}
	idx.byHandle[a.Handle] = imp
}

func (idx *importanceIndex) remove(a *Atom) {
	imp, ok := idx.byHandle[a.Handle]
	if !ok {
		return
	}
	idx.removeAt(a.Handle, imp)
	delete(idx.byHandle, a.Handle)
}

func (idx *importanceIndex) removeAt(h Handle, imp Importance) {
	lo := idx.search(imp)
	for i := lo; i < len(idx.entries) && idx.entries[i].importance == imp; i++ {
		if idx.entries[i].handle == h {
			idx.entries = append(idx.entries[:i], idx.entries[i+1:]...)
			return
		}
	}
}

// reposition moves h from oldImp to newImp, keeping the slice sorted.
func (idx *importanceIndex) reposition(h Handle, oldImp, newImp Importance) {
	if _, ok := idx.byHandle[h]; !ok {
		return
	}
	idx.removeAt(h, oldImp)
	i := idx.search(newImp)
	idx.entries = append(idx.entries, importanceEntry{})
	copy(idx.entries[i+1:], idx.entries[i:])
	idx.entries[i] = importanceEntry{handle: h, importance: newImp}
	idx.byHandle[h] = newImp
}

func (idx *importanceIndex) size() int {
	return len(idx.entries)
}

// removeWhere drops every handle for which keep is true.
func (idx *importanceIndex) removeWhere(resolve func(Handle) *Atom, keep func(*Atom) bool) {
	kept := idx.entries[:0]
	for _, e := range idx.entries {
		if a := resolve(e.handle); a != nil && keep(a) {
			delete(idx.byHandle, e.handle)
			continue
		}
		kept = append(kept, e)
	}
	idx.entries = kept
}
