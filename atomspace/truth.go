package atomspace

// TruthValue is the opaque belief collaborator consumed by the core (§6).
// The core never inspects a truth value's internals; it only asks whether
// it is null and, when merging, delegates to Merge.
type TruthValue interface {
	// IsNull reports whether this is the null sentinel.
	IsNull() bool
	// Merge combines this truth value with other and returns the result.
	// Merge must not mutate the receiver.
	Merge(other TruthValue) TruthValue
}

// nullTruthValue is the sentinel returned by NullTruthValue. Newly
// constructed atoms carry it until a caller supplies a real belief.
type nullTruthValue struct{}

// NullTruthValue returns the null sentinel truth value.
func NullTruthValue() TruthValue { return nullTruthValue{} }

func (nullTruthValue) IsNull() bool                   { return true }
func (nullTruthValue) Merge(other TruthValue) TruthValue { return other }

// SimpleTruthValue is the default, Strength/Confidence belief
// representation, grounded on the (Strength, Confidence) pair used by the
// AtomSpace reference in other_examples (cogpy-Erebus atomspace/atom.go).
type SimpleTruthValue struct {
	Strength   float64
	Confidence float64
}

func (SimpleTruthValue) IsNull() bool { return false }

// Merge implements the revision rule: the merged strength is the
// confidence-weighted mean of the two strengths, and the merged
// confidence is 1-(1-c1)(1-c2), never lower than either input. This
// is the conventional PLN-style revision used as AtomTable.cc's
// TruthValue::merge stand-in (the original delegates to an opaque,
// engine-specific collaborator).
func (tv SimpleTruthValue) Merge(other TruthValue) TruthValue {
	o, ok := other.(SimpleTruthValue)
	if !ok || other.IsNull() {
		return tv
	}
	total := tv.Confidence + o.Confidence
	if total == 0 {
		return SimpleTruthValue{Strength: (tv.Strength + o.Strength) / 2}
	}
	return SimpleTruthValue{
		Strength:   (tv.Strength*tv.Confidence + o.Strength*o.Confidence) / total,
		Confidence: 1 - (1-tv.Confidence)*(1-o.Confidence),
	}
}

// VersionFilter narrows compound query results to a particular belief
// context (§4.8.2's versionFilter parameter). A nil VersionFilter accepts
// everything.
type VersionFilter func(tv TruthValue) bool

func (f VersionFilter) accepts(tv TruthValue) bool {
	if f == nil {
		return true
	}
	return f(tv)
}

// Importance is the opaque, comparable attention value each atom carries.
// Comparisons are a plain float64 ordering, which is sufficient for the
// priority-keyed index (C9); the decay *policy* that assigns importance
// values is out of the core's scope per spec.md §1.
type Importance float64

// DefaultImportance is assigned to atoms that don't specify one.
const DefaultImportance Importance = 0
