package atomspace

import "math/rand"

// RNG is the §6 "RNG" collaborator consumed by getRandom.
type RNG interface {
	// Randint returns a pseudo-random integer in [0, n). It panics if
	// n <= 0, same as math/rand.Intn.
	Randint(n int) int
}

// defaultRNG wraps math/rand. No third-party RNG library appears anywhere
// in the retrieval pack (uuid.NewUUID draws only from crypto/rand
// internally, for node identifiers, not for sampling); stdlib math/rand is
// the only reasonable source here and is recorded in DESIGN.md as a
// justified stdlib use.
type defaultRNG struct {
	r *rand.Rand
}

// NewDefaultRNG returns an RNG seeded from seed. Callers that want
// nondeterministic sampling should seed from time.Now().UnixNano().
func NewDefaultRNG(seed int64) RNG {
	return &defaultRNG{r: rand.New(rand.NewSource(seed))}
}

func (d *defaultRNG) Randint(n int) int {
	return d.r.Intn(n)
}
