package ordering

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repeated insertion at a fixed anchor exhausts the local tag room on every
// call: each new member claims anchor.tag+1, which the previous insert
// already holds. This is the known performance cliff of the scheme, and the
// densest exercise of the rebalancing engine.
func TestSameAnchorFlood(t *testing.T) {
	const n = 256
	o := New[string]()
	require.NoError(t, o.InsertOnly("anchor"))
	for i := 0; i < n; i++ {
		require.NoError(t, o.InsertAfter("anchor", fmt.Sprintf("v%03d", i)))
		require.NoError(t, o.Check(), "invariants broken after insert %d", i)
	}
	assert.Equal(t, n+1, o.Len())
	assert.NotZero(t, o.relabeled, "a same-anchor flood must trigger relabeling")
	// a relabel never rewrites more than the ring, so total work stays under n rings
	assert.Less(t, o.relabeled, uint64(n*(n+2)), "relabeling work out of bounds")
	// newest insert sits directly after the anchor
	want := []string{"anchor"}
	for i := n - 1; i >= 0; i-- {
		want = append(want, fmt.Sprintf("v%03d", i))
	}
	assert.Equal(t, want, slices.Collect(o.Range()))
}

func TestSequentialAppendReproducesOrder(t *testing.T) {
	const n = 2000
	o := New[int]()
	require.NoError(t, o.InsertOnly(0))
	for i := 1; i < n; i++ {
		require.NoError(t, o.InsertAfter(i-1, i))
		require.NoError(t, o.Check(), "invariants broken after insert %d", i)
	}
	got := slices.Collect(o.Range())
	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v, "traversal diverges from insertion order at %d", i)
	}
	// appending at the back always finds tag room next to the front boundary
	assert.Zero(t, o.relabeled, "sequential append should never relabel")
}

// A member holding the maximum tag leaves no room above it: the candidate
// tag clamps onto the anchor's own tag, which must fire a relabel before
// the insertion completes.
func TestSaturationForcesRelabel(t *testing.T) {
	o := New[string]()
	require.NoError(t, o.InsertOnly("a"))
	require.NoError(t, o.InsertAfter("a", "b"))
	pos := o.positions["b"]
	pos.tag = MaxTag
	o.positions["b"] = pos
	require.NoError(t, o.Check(), "saturated but well-formed ring should validate")

	require.NoError(t, o.InsertAfter("b", "c"))
	assert.NotZero(t, o.relabeled, "saturated insert must relabel")
	require.NoError(t, o.Check())
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(o.Range()))
	rel, ok := o.Compare("b", "c")
	require.True(t, ok)
	assert.Equal(t, Less, rel)
}

// Drives the structure through a random mix of insertions and removals,
// comparing the ring against a plain slice model after every operation.
func TestRandomOpsAgainstModel(t *testing.T) {
	const ops = 1500
	rng := rand.New(rand.NewSource(42))
	o := New[int]()
	var model []int
	nextID := 0

	insert := func() {
		value := nextID
		nextID++
		if len(model) == 0 {
			require.NoError(t, o.InsertOnly(value))
			model = []int{value}
			return
		}
		at := rng.Intn(len(model))
		require.NoError(t, o.InsertAfter(model[at], value))
		model = slices.Insert(model, at+1, value)
	}
	remove := func() {
		at := rng.Intn(len(model))
		require.True(t, o.Remove(model[at]))
		model = slices.Delete(model, at, at+1)
	}

	for i := 0; i < ops; i++ {
		if len(model) == 0 || rng.Intn(3) > 0 {
			insert()
		} else {
			remove()
		}
		require.NoError(t, o.Check(), "invariants broken after op %d", i)
		require.Equal(t, len(model), o.Len(), "size diverged at op %d", i)
		require.True(t, slices.Equal(model, slices.Collect(o.Range())), "order diverged at op %d", i)
	}

	// order agreement implies Compare agreement; spot-check a sample
	for i := 0; i < 100 && len(model) >= 2; i++ {
		a, b := rng.Intn(len(model)), rng.Intn(len(model))
		rel, ok := o.Compare(model[a], model[b])
		require.True(t, ok)
		switch {
		case a < b:
			assert.Equal(t, Less, rel)
		case a > b:
			assert.Equal(t, Greater, rel)
		default:
			assert.Equal(t, Equal, rel)
		}
	}
}

// The traversal order around the front anchor must survive relabeling: the
// front keeps the minimum tag, and no tag collides outside the rewritten
// segment.
func TestRelabelPreservesFrontMinimum(t *testing.T) {
	o := New[string]()
	require.NoError(t, o.InsertOnly("front"))
	require.NoError(t, o.InsertAfter("front", "x"))
	// force collisions right next to the front anchor
	for i := 0; i < 64; i++ {
		require.NoError(t, o.InsertAfter("front", fmt.Sprintf("f%02d", i)))
		front, ok := o.Front()
		require.True(t, ok)
		require.Equal(t, "front", front)
		require.NoError(t, o.Check(), "invariants broken after insert %d", i)
	}
}
