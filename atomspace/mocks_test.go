package atomspace

import "github.com/google/uuid"

// mockTypeUUIDs stubs newTypeUUID for deterministic tests, the same
// swap-and-undo shape as the teacher's MockUUIDs (crdt/mocks_test.go).
func mockTypeUUIDs(uuids ...uuid.UUID) func() {
	var i int
	old := newTypeUUID
	undo := func() { newTypeUUID = old }
	newTypeUUID = func() uuid.UUID {
		u := uuids[i]
		i++
		return u
	}
	return undo
}
