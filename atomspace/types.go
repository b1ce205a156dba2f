package atomspace

import (
	"sync"

	"github.com/google/uuid"
)

// Type is an integer drawn from a dynamically extensible lattice rooted at
// ATOM, with NODE and LINK as its immediate children. All user types
// descend from one of those two.
type Type int

// Builtin root types. Every other type registered via TypeRegistry.Register
// is a descendant of NODE or LINK.
const (
	ATOM Type = iota
	NODE
	LINK
)

// TypeSubscriber is notified whenever a new type is registered. AtomTable
// construction subscribes a single no-op callback: its type-keyed indices
// are maps that grow on demand and have no storage to resize.
type TypeSubscriber func(t Type)

// typeNode is one entry of the type lattice.
type typeNode struct {
	name     string
	parent   Type
	uuid     uuid.UUID
	children []Type
}

// TypeRegistry holds the parent/child relation of the type lattice (C2) and
// notifies subscribers when it grows. uuid generation is grounded on the
// teacher's swappable uuidv1 var (crdt/ctree.go), which this package's
// tests stub the same way via newTypeUUID.
type TypeRegistry struct {
	mu          sync.RWMutex
	nodes       map[Type]*typeNode
	byName      map[string]Type
	next        Type
	subscribers []TypeSubscriber
}

var newTypeUUID = uuid.New // stubbed in tests for determinism

// NewTypeRegistry returns a registry seeded with ATOM, NODE and LINK.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		nodes:  make(map[Type]*typeNode),
		byName: make(map[string]Type),
		next:   LINK + 1,
	}
	r.nodes[ATOM] = &typeNode{name: "ATOM", parent: ATOM, uuid: newTypeUUID()}
	r.nodes[NODE] = &typeNode{name: "NODE", parent: ATOM, uuid: newTypeUUID()}
	r.nodes[LINK] = &typeNode{name: "LINK", parent: ATOM, uuid: newTypeUUID()}
	r.nodes[ATOM].children = []Type{NODE, LINK}
	r.byName["ATOM"] = ATOM
	r.byName["NODE"] = NODE
	r.byName["LINK"] = LINK
	return r
}

// Subscribe registers a TypeSubscriber, invoked synchronously for every
// subsequent Register call, before Register returns the new Type.
func (r *TypeRegistry) Subscribe(sub TypeSubscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, sub)
}

// Register adds a new type as a child of parent and returns its Type. If
// name was already registered, Register returns the existing Type
// idempotently without firing the signal again.
func (r *TypeRegistry) Register(name string, parent Type) Type {
	r.mu.Lock()
	if t, ok := r.byName[name]; ok {
		r.mu.Unlock()
		return t
	}
	if _, ok := r.nodes[parent]; !ok {
		parent = ATOM
	}
	t := r.next
	r.next++
	r.nodes[t] = &typeNode{name: name, parent: parent, uuid: newTypeUUID()}
	r.nodes[parent].children = append(r.nodes[parent].children, t)
	r.byName[name] = t
	subs := append([]TypeSubscriber(nil), r.subscribers...)
	r.mu.Unlock()

	for _, sub := range subs {
		sub(t)
	}
	return t
}

// Name returns the registered name of t, or "" if t is unknown.
func (r *TypeRegistry) Name(t Type) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.nodes[t]; ok {
		return n.name
	}
	return ""
}

// UUID returns the random identity minted for t when this registry
// registered it. It is not persisted: the persist package stores only the
// integer Type.
func (r *TypeRegistry) UUID(t Type) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[t]
	if !ok {
		return uuid.UUID{}, false
	}
	return n.uuid, true
}

// IsA reports whether sub is sup, or a descendant of sup.
func (r *TypeRegistry) IsA(sub, sup Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for t := sub; ; {
		if t == sup {
			return true
		}
		n, ok := r.nodes[t]
		if !ok || t == n.parent {
			return t == sup
		}
		if t == ATOM {
			return sup == ATOM
		}
		t = n.parent
	}
}

// ChildrenRecursive returns every proper descendant of t, in unspecified
// order.
func (r *TypeRegistry) ChildrenRecursive(t Type) []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Type
	var walk func(Type)
	walk = func(cur Type) {
		n, ok := r.nodes[cur]
		if !ok {
			return
		}
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(t)
	return out
}

// Max returns the highest Type value currently registered.
func (r *TypeRegistry) Max() Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.next - 1
}
