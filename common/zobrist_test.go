package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHashDeltaInvolution applies every legal move from the initial
// position, then undoes it, and checks the hash round-trips to its
// original value — the property HashDelta is built around: two XORs of
// the same delta cancel.
func TestHashDeltaInvolution(t *testing.T) {
	var board = NewBoard(NewInitialPosition())
	var before = board.Hash
	require.Equal(t, ComputeHash(&board.Position), before)

	var gen = NewGenerator(board)
	for _, m := range gen.All(White) {
		if !board.Apply(m) {
			continue
		}
		var afterApply = board.Hash
		require.NotEqual(t, before, afterApply, "move %+v left the hash unchanged", m)
		require.Equal(t, ComputeHash(&board.Position), afterApply)

		board.Undo()
		require.Equal(t, before, board.Hash, "undo of %+v did not restore the hash", m)
		require.Equal(t, ComputeHash(&board.Position), board.Hash)
	}
}

// TestHashDeltaCaptureFeedsPocket checks the capturer's-pocket mechanic
// directly: a capture must increment the capturing side's pocket count for
// the victim's kind, and the hash after the capture must equal a
// from-scratch hash of the resulting position.
func TestHashDeltaCaptureFeedsPocket(t *testing.T) {
	var pos = NewCustomPosition(White)
	pos.Board[MakeSquare(0, 0)] = NewPiece(White, Rook, MakeSquare(0, 0))
	pos.Board[MakeSquare(0, 0)].StunStack = 0
	pos.Board[MakeSquare(0, 0)].MoveStack = 1
	pos.Board[MakeSquare(0, 3)] = NewPiece(Black, Pawn, MakeSquare(0, 3))
	pos.Board[MakeSquare(0, 3)].StunStack = 0
	var board = NewBoard(pos)

	var move = Move{Kind: BoardMove, Color: White, Threat: TakeMove, From: MakeSquare(0, 0), To: MakeSquare(0, 3), PieceKind: Rook}
	require.True(t, board.Apply(move))
	require.Equal(t, 1, board.Position.Pocket[White][Pawn])
	require.Equal(t, ComputeHash(&board.Position), board.Hash)
}

func TestClampPocketCount(t *testing.T) {
	var cases = []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{MaxPocketCount - 1, MaxPocketCount - 1},
		{MaxPocketCount, MaxPocketCount - 1},
		{1000, MaxPocketCount - 1},
	}
	for _, c := range cases {
		if got := clampPocketCount(c.in); got != c.want {
			t.Errorf("clampPocketCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
