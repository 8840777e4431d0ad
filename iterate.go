package ordering

import "iter"

// RangeWithTags returns an iterator over all members and their tags in ring
// order, starting at front and visiting each member exactly once.
//
// The iterator is lazy and restartable: a fresh range re-walks from front.
// Mutating the structure while a walk is in progress is not supported.
func (o *Ordering[T]) RangeWithTags() iter.Seq2[T, Tag] {
	return func(yield func(T, Tag) bool) {
		if len(o.positions) == 0 {
			return
		}
		current := o.front
		for {
			pos := o.positions[current]
			if !yield(current, pos.tag) {
				return
			}
			if pos.next == o.front {
				return
			}
			current = pos.next
		}
	}
}

// Range returns an iterator over all members in ring order, starting at front.
func (o *Ordering[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range o.RangeWithTags() {
			if !yield(value) {
				return
			}
		}
	}
}
