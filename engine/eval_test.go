package engine

import (
	"testing"

	"github.com/fairyforge/vachess/common"
)

// mirrorPosition flips a position vertically and swaps colors, the
// transform the symmetry property is defined against.
func mirrorPosition(pos common.Position) common.Position {
	var out = common.NewCustomPosition(pos.SideToMove.Opponent())
	out.Custom = pos.Custom
	for sq := common.Square(0); int(sq) < common.BoardSize*common.BoardSize; sq++ {
		var p = pos.At(sq)
		if p.IsEmpty() {
			continue
		}
		var mirrored = common.MakeSquare(sq.File(), common.BoardSize-1-sq.Rank())
		var mp = p
		if p.Color == common.White {
			mp.Color = common.Black
		} else {
			mp.Color = common.White
		}
		out.Board[mirrored] = mp
	}
	out.Pocket[common.White] = pos.Pocket[common.Black]
	out.Pocket[common.Black] = pos.Pocket[common.White]
	return out
}

func TestEvaluateClassicSymmetry(t *testing.T) {
	var pos = common.NewInitialPosition()
	var board = common.NewBoard(pos)
	var mirrored = common.NewBoard(mirrorPosition(pos))

	var score = EvaluateClassic(board)
	var mirroredScore = EvaluateClassic(mirrored)
	if score != -mirroredScore {
		t.Fatalf("EvaluateClassic(P) = %d, EvaluateClassic(mirror(P)) = %d, want negatives of each other", score, mirroredScore)
	}
}

func TestEvaluateClassicStartIsLevel(t *testing.T) {
	var board = common.NewBoard(common.NewInitialPosition())
	if got := EvaluateClassic(board); got != 0 {
		t.Fatalf("expected the symmetric initial position to evaluate to 0, got %d", got)
	}
}

func TestEvaluateWeightedStartIsLevelModuloTurn(t *testing.T) {
	var board = common.NewBoard(common.NewInitialPosition())
	var got = EvaluateWeighted(board)
	var want = int(weightTurn)
	if got != want {
		t.Fatalf("expected the weighted evaluator of the initial position to equal the turn term (%d), got %d", want, got)
	}
}

func TestEvaluateWeightedRoyalBonus(t *testing.T) {
	var pos = common.NewCustomPosition(common.White)
	pos.Board[common.MakeSquare(0, 0)] = common.Piece{Color: common.White, Kind: common.King, MoveStack: 1, IsRoyal: true}
	pos.Board[common.MakeSquare(7, 7)] = common.Piece{Color: common.Black, Kind: common.Rook, MoveStack: 1}
	var board = common.NewBoard(pos)

	var got = EvaluateWeighted(board)
	if got <= weightRoyal/2 {
		t.Fatalf("expected the royal-endgame bonus to dominate the score, got %d", got)
	}
}

func TestPieceValueOutOfRangeIsZero(t *testing.T) {
	if got := PieceValue(common.PieceKind(-1)); got != 0 {
		t.Fatalf("PieceValue of an invalid kind should be 0, got %d", got)
	}
	if got := PieceValue(common.PieceKind(9999)); got != 0 {
		t.Fatalf("PieceValue of an invalid kind should be 0, got %d", got)
	}
}
