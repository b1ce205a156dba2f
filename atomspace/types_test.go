package atomspace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRegistry_RegisterIsIdempotentByName(t *testing.T) {
	u1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	u2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	r := NewTypeRegistry()
	defer mockTypeUUIDs(u1, u2)()

	concept1 := r.Register("CONCEPT", NODE)
	concept2 := r.Register("CONCEPT", NODE)

	assert.Equal(t, concept1, concept2, "re-registering the same name must return the same type")

	got, ok := r.UUID(concept1)
	require.True(t, ok)
	assert.Equal(t, u1, got, "the uuid minted for the first registration must be retained")
}

func TestTypeRegistry_IsAAndChildrenRecursive(t *testing.T) {
	r := NewTypeRegistry()
	animal := r.Register("ANIMAL_CONCEPT", NODE)
	dog := r.Register("DOG_CONCEPT", animal)

	assert.True(t, r.IsA(dog, animal))
	assert.True(t, r.IsA(dog, NODE))
	assert.True(t, r.IsA(dog, ATOM))
	assert.False(t, r.IsA(animal, dog))

	children := r.ChildrenRecursive(NODE)
	assert.Contains(t, children, animal)
	assert.Contains(t, children, dog)
}

func TestTypeRegistry_SubscribersFireOnRegister(t *testing.T) {
	r := NewTypeRegistry()
	var seen []Type
	r.Subscribe(func(ty Type) { seen = append(seen, ty) })

	t1 := r.Register("FIRST", ATOM)
	t2 := r.Register("SECOND", ATOM)

	assert.Equal(t, []Type{t1, t2}, seen)
}
