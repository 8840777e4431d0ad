package ordering

import "errors"

var (
	// ErrNotEmpty signals that a seeding operation hit a non-empty structure.
	ErrNotEmpty = errors.New("ordering: structure is not empty")
	// ErrNoSuchElement signals that an anchor element is not a member.
	ErrNoSuchElement = errors.New("ordering: no such element")
	// ErrDuplicateElement signals that an inserted element is already a member.
	ErrDuplicateElement = errors.New("ordering: duplicate element")
	// ErrInvalidStructure signals a violated structural invariant, found by Check.
	ErrInvalidStructure = errors.New("ordering: structural invariant violated")
)
