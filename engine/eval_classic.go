package engine

import "github.com/fairyforge/vachess/common"

// EvaluateClassic sums piece values for both sides, adds a per-piece
// resource term weighing how much a piece can still do this game against
// how stunned it currently is, and a lighter version of the same idea for
// pocketed pieces. Positive favors white.
func EvaluateClassic(board *common.Board) int {
	var score float64
	var gen = common.NewGenerator(board)

	for sq := common.Square(0); int(sq) < common.BoardSize*common.BoardSize; sq++ {
		var p = board.At(sq)
		if p.IsEmpty() {
			continue
		}
		var sign = 1.0
		if p.Color == common.Black {
			sign = -1.0
		}

		var numActions = len(gen.MovesOf(p.Color, sq, true))
		var term = float64(PieceValue(p.Kind)) +
			turnValue*float64(numActions*p.MoveStack) -
			turnValue*float64(p.StunStack)
		score += sign * term
	}

	for _, color := range [2]common.Color{common.White, common.Black} {
		var sign = 1.0
		if color == common.Black {
			sign = -1.0
		}
		var pocket = board.GetPocket(color)
		for kind := common.PieceKind(1); kind < common.PieceKind(len(pocket)); kind++ {
			if pocket[kind] == 0 {
				continue
			}
			var perUnit = float64(PieceValue(kind)) - turnValue*stunOnPlace
			score += sign * perUnit * float64(pocket[kind])
		}
	}

	return int(score)
}
