package ordering

import "math"

// rebalance redistributes tags over a contiguous ring segment around pivot.
//
// It is invoked by InsertAfter when no integer fits between the pivot's
// neighbors. The candidate segment consists of all members whose tag shares
// the pivot's high-order bits under a growing mask; it is extended in both
// ring directions but never across the front boundary. A segment is accepted
// once its tag spacing
//
//	increment = (mask+1) / numItems
//
// clears a threshold which starts at 1.0 and shrinks by 2/(2n)^(1/62) per
// mask widening. The shrinking threshold guarantees that an accepted segment
// has enough spare room before the same region exhausts again, which is what
// makes the relabeling work amortized O(log n) per insertion.
//
// Widening eventually captures the whole ring, where the spacing trivially
// clears the by-then near-zero threshold, so the loop always terminates.
// Maintenance never fails and is invisible to the caller, except through
// rewritten tags (and a Relabel event, if someone is watching).
func (o *Ordering[T]) rebalance(pivot T) {
	if len(o.positions) == 0 {
		return
	}
	front := o.front
	baseTag := o.positions[pivot].tag
	var mask Tag
	threshold := 1.0
	first, last := pivot, pivot
	numItems := Tag(1)
	multiplier := 2.0 / math.Pow(2.0*float64(len(o.positions)), 1.0/62.0)
	for {
		// grow backward while the predecessor shares the masked tag bits,
		// stopping as soon as first sits on the front anchor
		prev := o.positions[first].prev
		for first != front {
			prevPos := o.positions[prev]
			if prevPos.tag&^mask != baseTag {
				break
			}
			first = prev
			prev = prevPos.prev
			numItems++
		}
		// grow forward, never wrapping across front
		next := o.positions[last].next
		for next != front {
			nextPos := o.positions[next]
			if nextPos.tag&^mask != baseTag {
				break
			}
			last = next
			next = nextPos.next
			numItems++
		}
		increment := (mask + 1) / numItems
		if mask == MaxTag {
			// mask+1 would wrap; the segment is the whole ring by now
			increment = MaxTag / numItems
		}
		if float64(increment) >= threshold {
			o.relabel(first, last, baseTag, increment)
			o.relabeled += uint64(numItems)
			tracer().Debugf("ordering: relabeled %d members, spacing %d, mask %#x", numItems, increment, mask)
			o.publishRelabel(Relabel{Count: int(numItems), Mask: mask})
			return
		}
		mask = mask<<1 | 1
		baseTag &^= mask
		threshold *= multiplier
	}
}

// relabel rewrites the tags of the segment first..last (inclusive, in ring
// order) with strictly increasing tags spaced increment apart, starting at
// baseTag. The accepted spacing keeps the last tag below the masked range
// ceiling, so no tag outside the segment collides.
func (o *Ordering[T]) relabel(first, last T, baseTag, increment Tag) {
	assertThat(increment > 0, "relabel requires a positive tag spacing")
	item := first
	newTag := baseTag
	for item != last {
		pos := o.positions[item]
		pos.tag = newTag
		o.positions[item] = pos
		newTag += increment
		item = pos.next
	}
	pos := o.positions[last]
	pos.tag = newTag
	o.positions[last] = pos
}
