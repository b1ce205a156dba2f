package atomspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTruthValue_MergeWeightsByConfidence(t *testing.T) {
	a := SimpleTruthValue{Strength: 1.0, Confidence: 0.9}
	b := SimpleTruthValue{Strength: 0.0, Confidence: 0.1}

	merged := a.Merge(b).(SimpleTruthValue)

	assert.InDelta(t, 0.9, merged.Strength, 1e-9)
	assert.Greater(t, merged.Confidence, a.Confidence, "revision should not decrease confidence")
}

func TestNullTruthValue_MergeReplaces(t *testing.T) {
	null := NullTruthValue()
	real := SimpleTruthValue{Strength: 0.5, Confidence: 0.5}

	assert.Equal(t, real, null.Merge(real))
	assert.True(t, null.IsNull())
}

func TestVersionFilter_NilAcceptsEverything(t *testing.T) {
	var f VersionFilter
	assert.True(t, f.accepts(SimpleTruthValue{}))
	assert.True(t, f.accepts(NullTruthValue()))
}
