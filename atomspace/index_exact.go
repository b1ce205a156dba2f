package atomspace

import (
	"encoding/binary"
	"strings"
)

// nodeKey is the exact-match identity of a node (C4).
type nodeKey struct {
	Type Type
	Name string
}

// linkKey is the exact-match identity of a link (C5). Outgoing is a
// byte-packed encoding of the handle tuple so that slices (not directly
// comparable in Go) can serve as map keys.
type linkKey struct {
	Type     Type
	Outgoing string
}

// encodeOutgoing packs a handle tuple into a string suitable for use as a
// map key, preserving order and distinguishing arities (an empty tuple and
// a one-element tuple of handle 0 never collide, since each element is
// fixed-width).
func encodeOutgoing(handles []Handle) string {
	var sb strings.Builder
	var buf [8]byte
	for _, h := range handles {
		binary.BigEndian.PutUint64(buf[:], uint64(h))
		sb.Write(buf[:])
	}
	return sb.String()
}

// nodeIndex is the (type, name) -> handle exact lookup (C4).
type nodeIndex struct {
	byKey map[nodeKey]Handle
}

func newNodeIndex() *nodeIndex {
	return &nodeIndex{byKey: make(map[nodeKey]Handle)}
}

func (idx *nodeIndex) insert(a *Atom) {
	if a.Kind != NodeKind {
		return
	}
	idx.byKey[nodeKey{Type: a.Type, Name: a.Name}] = a.Handle
}

func (idx *nodeIndex) remove(a *Atom) {
	if a.Kind != NodeKind {
		return
	}
	delete(idx.byKey, nodeKey{Type: a.Type, Name: a.Name})
}

func (idx *nodeIndex) get(t Type, name string) Handle {
	return idx.byKey[nodeKey{Type: t, Name: name}]
}

// linkIndex is the (type, outgoing-tuple) -> handle exact lookup (C5).
type linkIndex struct {
	byKey map[linkKey]Handle
}

func newLinkIndex() *linkIndex {
	return &linkIndex{byKey: make(map[linkKey]Handle)}
}

func (idx *linkIndex) insert(a *Atom) {
	if a.Kind != LinkKind {
		return
	}
	idx.byKey[linkKey{Type: a.Type, Outgoing: encodeOutgoing(a.Outgoing)}] = a.Handle
}

func (idx *linkIndex) remove(a *Atom) {
	if a.Kind != LinkKind {
		return
	}
	delete(idx.byKey, linkKey{Type: a.Type, Outgoing: encodeOutgoing(a.Outgoing)})
}

func (idx *linkIndex) get(t Type, outgoing []Handle) Handle {
	return idx.byKey[linkKey{Type: t, Outgoing: encodeOutgoing(outgoing)}]
}
