package atomspace_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/opencog/atomtable/atomspace"
)

// stateMachine drives random Add/Remove sequences against a live table and
// checks P1 (structural uniqueness) and P6 (size tracks live population)
// after every step, in the same rapid.Run/rapid.Check shape as the
// teacher's crdt package property test.
type stateMachine struct {
	tbl     *atomspace.AtomTable
	concept atomspace.Type
	names   map[string]atomspace.Handle
}

func (m *stateMachine) Init(t *rapid.T) {
	m.tbl = atomspace.New()
	m.concept = m.tbl.Types().Register("CONCEPT", atomspace.NODE)
	m.names = make(map[string]atomspace.Handle)
}

func (m *stateMachine) AddNode(t *rapid.T) {
	name := rapid.StringMatching(`[a-c]`).Draw(t, "name").(string)
	h, err := m.tbl.Add(atomspace.NewNode(m.concept, name))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if prior, ok := m.names[name]; ok {
		if prior != h {
			t.Fatalf("structural dedup violated: %q got handle %v, want %v", name, h, prior)
		}
	} else {
		m.names[name] = h
	}
}

func (m *stateMachine) RemoveNode(t *rapid.T) {
	if len(m.names) == 0 {
		t.Skip("nothing to remove")
	}
	var name string
	for n := range m.names {
		name = n
		break
	}
	h := m.names[name]
	if m.tbl.Remove(h, false) {
		delete(m.names, name)
	}
}

func (m *stateMachine) Check(t *rapid.T) {
	if got, want := m.tbl.Size(), len(m.names); got != want {
		t.Fatalf("size mismatch: got %d, want %d", got, want)
	}
	for name, h := range m.names {
		if got := m.tbl.GetByName(m.concept, name); got != h {
			t.Fatalf("GetByName(%q) = %v, want %v", name, got, h)
		}
	}
}

func TestTableProperty(t *testing.T) {
	rapid.Check(t, rapid.Run(&stateMachine{}))
}
