package vnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_ColorDefaultsToBlack(t *testing.T) {
	n := New[int](5, 0)
	assert.Equal(t, Black, n.Color(0), "color with no recorded history should default to black")
	assert.Equal(t, Black, n.Color(100), "color with no recorded history should default to black at any version")
}

func TestNode_ColorHistory(t *testing.T) {
	n := New[int](5, 0)
	n.SetColor(Red, 0)
	n.SetColor(Black, 3)
	n.SetColor(Red, 5)

	tests := map[string]struct {
		version int
		want    Color
	}{
		"before any write falls back to default": {version: -1, want: Black},
		"at first write":                         {version: 0, want: Red},
		"between writes holds the earlier value": {version: 2, want: Red},
		"at a later write":                       {version: 3, want: Black},
		"between later writes":                   {version: 4, want: Black},
		"at the last write":                      {version: 5, want: Red},
		"beyond the last write holds":             {version: 1000, want: Red},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Color(tc.version))
		})
	}
}

func TestNode_ColorCoalescesSameVersionWrites(t *testing.T) {
	n := New[int](5, 0)
	n.SetColor(Red, 2)
	n.SetColor(Black, 2)
	assert.Equal(t, Black, n.Color(2), "the latest write at a version should win")
}

func TestNode_ChildrenHistory(t *testing.T) {
	n := New[int](1, 0)
	left := New[int](0, 1)
	right := New[int](2, 1)

	assert.Nil(t, n.Left(0))
	assert.Nil(t, n.Right(0))

	n.SetLeft(left, 1)
	assert.Same(t, left, n.Left(1))
	assert.Nil(t, n.Right(1), "setting left should not invent a right child")

	n.SetRight(right, 2)
	assert.Same(t, left, n.Left(2), "setting right should preserve the prior left")
	assert.Same(t, right, n.Right(2))

	// Earlier versions are unaffected by later writes.
	assert.Nil(t, n.Left(0))
	assert.Same(t, left, n.Left(1))
	assert.Nil(t, n.Right(1))
}

func TestNode_SetChildrenReplacesBothAtOnce(t *testing.T) {
	n := New[int](1, 0)
	a := New[int](0, 1)
	b := New[int](2, 1)
	n.SetChildren(a, b, 1)
	assert.Same(t, a, n.Left(1))
	assert.Same(t, b, n.Right(1))
}

func TestNode_ParentHistory(t *testing.T) {
	n := New[int](1, 0)
	p := New[int](2, 0)
	assert.Nil(t, n.Parent(0), "a fresh node has no parent")

	n.SetParent(p, 1)
	assert.Same(t, p, n.Parent(1))
	assert.Nil(t, n.Parent(0), "earlier versions are unaffected")
}

func TestNode_AliveAcrossBirthAndDeath(t *testing.T) {
	n := New[int](1, 3)
	assert.False(t, n.Alive(0))
	assert.False(t, n.Alive(2))
	assert.True(t, n.Alive(3))
	assert.True(t, n.Alive(100))

	require.NoError(t, n.Retire(7))
	assert.True(t, n.Alive(6))
	assert.False(t, n.Alive(7))
	assert.False(t, n.Alive(8))
}

func TestNode_RetireIdempotent(t *testing.T) {
	n := New[int](1, 0)
	require.NoError(t, n.Retire(5))
	require.NoError(t, n.Retire(5))
	death, ok := n.Death()
	assert.True(t, ok)
	assert.Equal(t, 5, death)
}

func TestNode_RetireRejectsGoingBackwards(t *testing.T) {
	n := New[int](1, 0)
	require.NoError(t, n.Retire(5))
	err := n.Retire(3)
	assert.Error(t, err)

	death, ok := n.Death()
	assert.True(t, ok)
	assert.Equal(t, 5, death, "a rejected retire must not move death backwards")
}

func TestNode_OverwriteKeyIsUnversioned(t *testing.T) {
	n := New[int](10, 0)
	assert.Equal(t, 10, n.Key())
	n.OverwriteKey(99)
	assert.Equal(t, 99, n.Key(), "overwrite replaces the key outright, with no history to roll back to")
}

func TestNode_String(t *testing.T) {
	n := New[int](42, 0)
	assert.Equal(t, "Node(42)", n.String())
}
