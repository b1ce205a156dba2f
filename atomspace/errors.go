package atomspace

import "errors"

// Error kinds, §7. Propagation policy: NotRemovable is surfaced as a
// return-value plus a warning log, never raised. ErrInvalidLink,
// ErrHandleAlreadyAssigned and ErrInvalidQuery are returned as errors by
// the operation that detects them. ErrInvalidHandle is not returned by any
// operation: an unresolvable handle yields nil, false or an empty set.
// ErrNotCopyable is never returned either.
var (
	// ErrInvalidHandle means a handle does not resolve to a live atom.
	ErrInvalidHandle = errors.New("atomspace: invalid handle")
	// ErrInvalidLink means a link's outgoing tuple contains an invalid handle.
	ErrInvalidLink = errors.New("atomspace: link has invalid outgoing handle")
	// ErrHandleAlreadyAssigned means add received a candidate carrying a
	// handle when a structurally-equal atom already exists.
	ErrHandleAlreadyAssigned = errors.New("atomspace: candidate atom already carries a handle")
	// ErrInvalidQuery means a query was posed with contradictory or
	// insufficient constraints.
	ErrInvalidQuery = errors.New("atomspace: invalid query")
	// ErrNotCopyable documents that AtomTable must never be copied.
	ErrNotCopyable = errors.New("atomspace: AtomTable is not copyable")
)
