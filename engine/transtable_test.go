package engine

import (
	"testing"

	"github.com/fairyforge/vachess/common"
	"github.com/stretchr/testify/require"
)

func TestTransTableRoundTrip(t *testing.T) {
	var tt = NewTransTable(64)
	var move = common.Move{Kind: common.BoardMove, Color: common.White, From: common.MakeSquare(0, 0), To: common.MakeSquare(0, 1)}
	tt.Store(123, 4, 55, Exact, move)

	depth, value, bound, best, ok := tt.Probe(123)
	require.True(t, ok)
	require.Equal(t, 4, depth)
	require.Equal(t, 55, value)
	require.Equal(t, Exact, bound)
	require.Equal(t, move, best)
}

func TestTransTableMissOnKeyCollision(t *testing.T) {
	var tt = NewTransTable(1)
	tt.Store(1, 3, 10, Exact, common.MoveNone)
	var _, _, _, _, ok = tt.Probe(2)
	require.False(t, ok, "a different key hashing to the same slot must miss, not return stale content")
}

// TestTransTableDepthPreferReplacement: a shallower store must not evict a
// deeper entry already recorded for a different position in the same slot.
func TestTransTableDepthPreferReplacement(t *testing.T) {
	var tt = NewTransTable(1)
	tt.Store(10, 8, 100, Exact, common.MoveNone)
	tt.Store(20, 2, 200, Exact, common.MoveNone)

	var _, value, _, _, ok = tt.Probe(10)
	require.True(t, ok, "deeper entry must survive a shallower store for a colliding key")
	require.Equal(t, 100, value)
}

func TestTransTableSameKeyAlwaysReplacesRegardlessOfDepth(t *testing.T) {
	var tt = NewTransTable(1)
	tt.Store(10, 8, 100, Exact, common.MoveNone)
	tt.Store(10, 1, 999, Upper, common.MoveNone)

	var depth, value, bound, _, ok = tt.Probe(10)
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, 999, value)
	require.Equal(t, Upper, bound)
}

func TestNewTransTableRoundsDownToPowerOfTwo(t *testing.T) {
	var tt = NewTransTable(10)
	require.Equal(t, uint64(7), tt.mask, "10 entries should round down to 8, giving a mask of 7")
}

func TestClearRemovesEveryEntry(t *testing.T) {
	var tt = NewTransTable(4)
	tt.Store(1, 5, 1, Exact, common.MoveNone)
	tt.Clear()
	var _, _, _, _, ok = tt.Probe(1)
	require.False(t, ok)
}
