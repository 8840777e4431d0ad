package ordering

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// Tag is the numeric label attached to every member. Walking the ring from
// front, tags strictly increase, so comparing two tags compares ring order.
//
// Tags are not stable identities: a relabel during insertion may rewrite the
// tags of a whole ring segment.
type Tag uint64

// MaxTag is the top of the tag space. A candidate tag is clamped here rather
// than wrapped, which immediately forces a relabel.
const MaxTag = Tag(math.MaxUint64)

// position is the per-member record: both ring neighbors plus the tag.
// All position records together form a single cycle.
type position[T comparable] struct {
	prev T
	next T
	tag  Tag
}

// Ordering maintains a total order over distinct elements of type T.
//
// An Ordering created by New is empty. Elements are identified by value;
// the comparable constraint supplies equality and hashing, and duplication
// is a plain value copy. The zero value of Ordering is not usable, use New.
//
// All operations are synchronous and unguarded: insertion, removal and
// relabeling perform multi-step read-then-write sequences over several
// position records, so concurrent use requires external exclusive locking.
type Ordering[T comparable] struct {
	positions map[T]position[T]
	front     T // meaningful iff len(positions) > 0; always holds the minimum tag
	relabeled uint64
	feed      *relabelFeed
}

// New creates an empty Ordering.
func New[T comparable]() *Ordering[T] {
	return &Ordering[T]{positions: make(map[T]position[T])}
}

// Len returns the current number of members.
func (o *Ordering[T]) Len() int {
	return len(o.positions)
}

// Contains reports whether value is currently a member.
func (o *Ordering[T]) Contains(value T) bool {
	_, ok := o.positions[value]
	return ok
}

// Front returns the front anchor of the ring, i.e. the member holding the
// minimum tag. ok is false iff the structure is empty.
func (o *Ordering[T]) Front() (T, bool) {
	if len(o.positions) == 0 {
		var none T
		return none, false
	}
	return o.front, true
}

// InsertOnly seeds an empty structure with its first member: a singleton
// ring where value is its own neighbor in both directions, carrying tag 0.
//
// Seeding a non-empty structure is a contract violation and returns
// ErrNotEmpty without mutating anything.
func (o *Ordering[T]) InsertOnly(value T) error {
	if len(o.positions) != 0 {
		return fmt.Errorf("%w: cannot seed a structure with %d members", ErrNotEmpty, len(o.positions))
	}
	o.positions[value] = position[T]{prev: value, next: value, tag: 0}
	o.front = value
	return nil
}

// InsertAfter inserts value directly after member after.
//
// The new member receives a tag between its neighbors' tags whenever one
// fits; otherwise a segment of the ring is relabeled before InsertAfter
// returns (see package documentation). Amortized cost is O(log n).
//
// All preconditions are checked before any mutation: after must be a
// current member (ErrNoSuchElement), value must not be one
// (ErrDuplicateElement). These two checks also reject after == value.
func (o *Ordering[T]) InsertAfter(after T, value T) error {
	prevPos, ok := o.positions[after]
	if !ok {
		return fmt.Errorf("%w: anchor %v", ErrNoSuchElement, after)
	}
	if _, present := o.positions[value]; present {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, value)
	}
	next := prevPos.next
	nextPos := o.positions[next]
	tag := prevPos.tag
	if tag != MaxTag {
		tag++ // clamped at MaxTag, never wrapped
	}
	o.positions[value] = position[T]{prev: after, next: next, tag: tag}
	if after == next {
		// singleton ring: both neighbor links of after point at the new member
		pos := o.positions[after]
		pos.prev = value
		pos.next = value
		o.positions[after] = pos
	} else {
		prevPos.next = value
		o.positions[after] = prevPos
		nextPos.prev = value
		o.positions[next] = nextPos
	}
	if tag == prevPos.tag || tag == nextPos.tag {
		// no integer fits strictly between the neighbors
		o.rebalance(value)
	}
	return nil
}

// Remove splices value out of the ring and reports whether it was a member.
// Removing an absent element is not an error. Surviving tags are never
// touched, so a removal costs O(1).
//
// When the current front is removed, its successor becomes the new front;
// the successor held the second-smallest tag, so the front keeps holding
// the ring minimum.
func (o *Ordering[T]) Remove(value T) bool {
	pos, ok := o.positions[value]
	if !ok {
		return false
	}
	delete(o.positions, value)
	if len(o.positions) == 0 {
		var none T
		o.front = none
		return true
	}
	prevPos := o.positions[pos.prev]
	prevPos.next = pos.next
	o.positions[pos.prev] = prevPos
	nextPos := o.positions[pos.next] // re-read: prev and next coincide in a 2-ring
	nextPos.prev = pos.prev
	o.positions[pos.next] = nextPos
	if value == o.front {
		o.front = pos.next
	}
	return true
}

// Rel is the relative order of two members, as reported by Compare.
type Rel int

// Relative order values, aligned with the sign convention of package cmp.
const (
	Less    Rel = -1
	Equal   Rel = 0
	Greater Rel = 1
)

func (r Rel) String() string {
	switch r {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	}
	return "Equal"
}

// Compare reports the relative ring order of two members in O(1) by
// comparing their tags. ok is false when either operand is not a member.
// Compare(a, a) is Equal for any member a.
func (o *Ordering[T]) Compare(a, b T) (rel Rel, ok bool) {
	posA, ok := o.positions[a]
	if !ok {
		return Equal, false
	}
	posB, ok := o.positions[b]
	if !ok {
		return Equal, false
	}
	switch {
	case posA.tag < posB.tag:
		return Less, true
	case posA.tag > posB.tag:
		return Greater, true
	}
	return Equal, true
}
