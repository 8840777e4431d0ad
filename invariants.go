package ordering

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Check validates the structural invariants of the ring.
//
// It performs two full traversals: one for ring integrity (every member is
// reachable from front exactly once, with consistent prev/next back-links),
// one for tag ordering (tags strictly increase from front, which also rules
// out duplicates). The checker is intended for tests and debugging; mutating
// operations maintain the invariants without calling it.
func (o *Ordering[T]) Check() error {
	if err := o.checkRing(); err != nil {
		return err
	}
	return o.checkTags()
}

// checkRing verifies cycle integrity and map/ring consistency.
func (o *Ordering[T]) checkRing() error {
	if len(o.positions) == 0 {
		return nil
	}
	frontPos, ok := o.positions[o.front]
	if !ok {
		return fmt.Errorf("%w: front %v is not a member", ErrInvalidStructure, o.front)
	}
	value := o.front
	next := frontPos.next
	seen := 0
	for {
		seen++
		if seen > len(o.positions) {
			return fmt.Errorf("%w: ring does not close within %d members", ErrInvalidStructure, len(o.positions))
		}
		nextPos, ok := o.positions[next]
		if !ok {
			return fmt.Errorf("%w: dangling next link %v -> %v", ErrInvalidStructure, value, next)
		}
		if nextPos.prev != value {
			return fmt.Errorf("%w: prev link of %v does not point back to %v", ErrInvalidStructure, next, value)
		}
		if next == o.front {
			break
		}
		value = next
		next = nextPos.next
	}
	if seen != len(o.positions) {
		return fmt.Errorf("%w: ring visits %d of %d members", ErrInvalidStructure, seen, len(o.positions))
	}
	return nil
}

// checkTags verifies strict tag monotonicity walking forward from front.
func (o *Ordering[T]) checkTags() error {
	haveLast := false
	var lastValue T
	var lastTag Tag
	seen := 0
	for value, tag := range o.RangeWithTags() {
		seen++
		if haveLast && lastTag >= tag {
			return fmt.Errorf("%w: tag of %v (%d) not above tag of %v (%d)",
				ErrInvalidStructure, value, tag, lastValue, lastTag)
		}
		lastValue, lastTag, haveLast = value, tag, true
	}
	if seen != len(o.positions) {
		return fmt.Errorf("%w: traversal yields %d of %d members", ErrInvalidStructure, seen, len(o.positions))
	}
	return nil
}

// Digest returns a fingerprint of the current labeling: an xxh3 hash over
// the front-to-back tag sequence.
//
// Two traversals of an unmutated structure hash identically; any relabel
// (and any insert or removal) changes the digest with high probability.
// Useful in tests to pin down which operations rewrite tags.
func (o *Ordering[T]) Digest() uint64 {
	buf := make([]byte, 0, len(o.positions)*8)
	var enc [8]byte
	for _, tag := range o.RangeWithTags() {
		binary.BigEndian.PutUint64(enc[:], uint64(tag))
		buf = append(buf, enc[:]...)
	}
	return xxh3.Hash(buf)
}
