package ordering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNames(t *testing.T) *Ordering[string] {
	t.Helper()
	o := New[string]()
	require.NoError(t, o.InsertOnly("bob"))
	require.NoError(t, o.InsertAfter("bob", "carol"))
	require.NoError(t, o.InsertAfter("carol", "gene"))
	require.NoError(t, o.Check())
	return o
}

func TestCheckDetectsBrokenBackLink(t *testing.T) {
	o := seedNames(t)
	pos := o.positions["gene"]
	pos.prev = "bob" // should be carol
	o.positions["gene"] = pos
	err := o.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStructure), "got %v", err)
}

func TestCheckDetectsDanglingNextLink(t *testing.T) {
	o := seedNames(t)
	pos := o.positions["carol"]
	pos.next = "ghost"
	o.positions["carol"] = pos
	assert.ErrorIs(t, o.Check(), ErrInvalidStructure)
}

func TestCheckDetectsUnreachableMember(t *testing.T) {
	o := seedNames(t)
	// a well-formed record that no ring link reaches
	o.positions["island"] = position[string]{prev: "island", next: "island", tag: 99}
	assert.ErrorIs(t, o.Check(), ErrInvalidStructure)
}

func TestCheckDetectsDanglingFront(t *testing.T) {
	o := seedNames(t)
	o.front = "ghost"
	assert.ErrorIs(t, o.Check(), ErrInvalidStructure)
}

func TestCheckDetectsDuplicateTag(t *testing.T) {
	o := seedNames(t)
	pos := o.positions["gene"]
	pos.tag = o.positions["carol"].tag
	o.positions["gene"] = pos
	assert.ErrorIs(t, o.Check(), ErrInvalidStructure)
}

func TestCheckDetectsNonMinimalFront(t *testing.T) {
	o := seedNames(t)
	// rotating the anchor forward breaks tag monotonicity seen from front
	o.front = "carol"
	assert.ErrorIs(t, o.Check(), ErrInvalidStructure)
}

func TestDigestTracksLabeling(t *testing.T) {
	o := seedNames(t)
	d1 := o.Digest()
	assert.Equal(t, d1, o.Digest(), "digest must be stable without mutation")
	require.NoError(t, o.InsertAfter("bob", "james"))
	assert.NotEqual(t, d1, o.Digest(), "insertion must change the digest")
}
