package document

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOrValueMatch_PrefixSemantics(t *testing.T) {
	m, err := KeyOrValueMatch("foo")
	require.NoError(t, err)

	assert.True(t, m.Match(NewMap(Pair{Key: "k", Value: NewString("foobar")})),
		"pattern must match a candidate it is a prefix of")
	assert.False(t, m.Match(NewMap(Pair{Key: "k", Value: NewString("xfoobar")})),
		"pattern must be anchored at the start")
	assert.True(t, m.Match(NewMap(Pair{Key: "foobar", Value: NewInt(1)})),
		"keys are candidates too")
	assert.False(t, m.Match(NewMap(Pair{Key: "k", Value: NewInt(42)})),
		"non-string values are not candidates")
}

func TestKeyOrValueMatch_BadPattern(t *testing.T) {
	_, err := KeyOrValueMatch("foo(")
	assert.Error(t, err)
}

func TestFieldValueMatch(t *testing.T) {
	m, err := FieldValueMatch("_types", "OMInterrupt")
	require.NoError(t, err)

	assert.True(t, m.Match(NewMap(Pair{Key: "_types", Value: NewString("OMInterruptSource")})))
	assert.True(t, m.Match(NewMap(
		Pair{Key: "_types", Value: NewSequence(NewString("OMField"), NewString("OMInterrupt"))},
	)), "lists are searched element-wise")
	assert.False(t, m.Match(NewMap(Pair{Key: "_types", Value: NewString("OMField")})))
	assert.False(t, m.Match(NewMap(Pair{Key: "other", Value: NewString("OMInterrupt")})),
		"field must be present")
}

func TestSelect_PrunesBelowMatches(t *testing.T) {
	inner := NewMap(Pair{Key: "hit", Value: NewString("inner")})
	outer := NewMap(
		Pair{Key: "hit", Value: NewString("outer")},
		Pair{Key: "child", Value: inner},
	)
	root := NewMap(Pair{Key: "top", Value: NewSequence(outer)})

	m, err := KeyOrValueMatch("hit")
	require.NoError(t, err)

	var hits []*Node
	for n := range Select(root, m) {
		hits = append(hits, n)
	}

	require.Len(t, hits, 1, "children of a match are not searched further")
	assert.Same(t, outer, hits[0])
}

func TestSelect_Restartable(t *testing.T) {
	root := NewSequence(
		NewMap(Pair{Key: "hit", Value: NewInt(1)}),
		NewMap(Pair{Key: "hit", Value: NewInt(2)}),
	)
	m, err := KeyOrValueMatch("hit")
	require.NoError(t, err)

	seq := Select(root, m)
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.Len(t, first, 2)
	assert.Equal(t, first, second, "ranging again reproduces the same matches")
}

func TestSelect_ShortCircuit(t *testing.T) {
	root := NewSequence(
		NewMap(Pair{Key: "hit", Value: NewInt(1)}),
		NewMap(Pair{Key: "hit", Value: NewInt(2)}),
	)
	m, err := KeyOrValueMatch("hit")
	require.NoError(t, err)

	var seen int
	for range Select(root, m) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestFirst(t *testing.T) {
	want := NewMap(Pair{Key: "hit", Value: NewInt(1)})
	root := NewSequence(NewMap(Pair{Key: "miss", Value: NewInt(0)}), want)

	m, err := KeyOrValueMatch("hit")
	require.NoError(t, err)

	got, ok := First(root, m)
	require.True(t, ok)
	assert.Same(t, want, got)

	_, ok = First(NewMap(), m)
	assert.False(t, ok)
}

func TestWalk_PreOrderNoPruning(t *testing.T) {
	leafMap := NewMap(Pair{Key: "x", Value: NewInt(1)})
	seq := NewSequence(leafMap, NewString("s"))
	root := NewMap(Pair{Key: "list", Value: seq})

	got := slices.Collect(Walk(root))

	require.Len(t, got, 3, "scalar leaves are not yielded")
	assert.Same(t, root, got[0], "container before its children")
	assert.Same(t, seq, got[1])
	assert.Same(t, leafMap, got[2])
}
