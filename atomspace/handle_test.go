package atomspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleRegistry_RegisterIsMonotonic(t *testing.T) {
	r := NewHandleRegistry()
	a := &Atom{Kind: NodeKind, Name: "a"}
	b := &Atom{Kind: NodeKind, Name: "b"}

	h1 := r.register(a)
	h2 := r.register(b)

	assert.NotEqual(t, UndefinedHandle, h1)
	assert.Greater(t, int64(h2), int64(h1))
}

func TestHandleRegistry_PreAssignedHandleHonored(t *testing.T) {
	r := NewHandleRegistry()
	rehydrated := &Atom{Kind: NodeKind, Name: "old", Handle: Handle(500)}

	h := r.register(rehydrated)
	assert.Equal(t, Handle(500), h)

	fresh := &Atom{Kind: NodeKind, Name: "new"}
	h2 := r.register(fresh)
	assert.Greater(t, int64(h2), int64(500), "next handle must be bumped past the pre-assigned one")
}

func TestHandleRegistry_UnregisterInvalidatesResolve(t *testing.T) {
	r := NewHandleRegistry()
	a := &Atom{Kind: NodeKind, Name: "a"}
	h := r.register(a)

	r.unregister(h)

	assert.False(t, r.valid(h))
	assert.Nil(t, r.resolve(h))
}
