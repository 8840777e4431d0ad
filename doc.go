/*
Package ordering maintains a total order over a dynamic collection of
distinct elements.

Order Maintenance

The order-maintenance problem is to support insertion at an arbitrary point,
removal, and O(1) answers to the question “which of these two elements comes
first?”, without renumbering the whole collection on a typical insert. It is
the kind of primitive found inside larger systems which need dynamically
re-orderable sortable keys: position identifiers for collaborative editing,
priority orderings, index-key generation.

Elements are arranged on a cyclic doubly-linked ring, anchored at a
distinguished front element. Every member carries a 64-bit integer tag whose
relative order matches ring order, so comparing two members is a pair of map
lookups and one integer comparison. Inserting assigns a tag between the two
neighbors; when no integer fits in between, a bounded segment of the ring is
relabeled. The relabeling follows the list-labeling scheme of

	Bender, Cole, Demaine, Farach-Colton, Zito:
	Two Simplified Algorithms for Maintaining Order in a List (ESA 2002)

as popularized by Eppstein's PADS collection (OrderedSequence.py). Segments
grow by doubling a mask over the high-order tag bits until the tag density
of the candidate segment falls below a shrinking threshold, which yields
amortized O(log n) relabeling work per insertion.

	Operation     |   Cost
	--------------+----------------------
	InsertAfter   |   amortized O(log n)
	Remove        |   O(1)
	Compare       |   O(1)
	Traversal     |   O(n)

The structure is a plain value with explicit operations and performs no
internal locking: concurrent mutation requires external exclusive locking.
Tags are not stable identities; a relabel may rewrite them at any insert
(see Watch for change notifications).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordering

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer. Deliberately unexported: the
// conventional name T would collide with the type parameter of Ordering[T]
// inside method bodies.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
