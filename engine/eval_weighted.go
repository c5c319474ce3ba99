package engine

import (
	"math"

	"github.com/fairyforge/vachess/common"
)

const (
	weightMaterial  = 1.0
	weightMobility  = 15.0
	weightResource  = 40.0
	weightPlacement = 30.0
	weightThreats   = 50.0
	weightTurn      = 5.0
	weightRoyal     = 8000.0

	maxMobilityCount = 32
)

// EvaluateWeighted linearly combines six terms, each isolating one facet
// of the position (material, mobility, resource health, square quality,
// live threats, and tempo), plus a large bonus for having reduced the
// opponent to zero royals while still holding exactly one.
func EvaluateWeighted(board *common.Board) int {
	var material, mobility, resource, placement, threats float64
	var whiteRoyals, blackRoyals int
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

		material += sign * float64(PieceValue(p.Kind))

		var numActions = len(gen.MovesOf(p.Color, sq, true))
		if numActions > maxMobilityCount {
			numActions = maxMobilityCount
		}
		mobility += sign * float64(numActions)

		resource += sign * (float64(p.MoveStack) - 0.5*float64(p.StunStack))

		placement += sign * float64(PieceValue(p.Kind)) * math.Exp(-0.35*centreDistance(sq))

		if p.IsRoyal {
			if p.Color == common.White {
				whiteRoyals++
			} else {
				blackRoyals++
			}
		}
	}

	for _, color := range [2]common.Color{common.White, common.Black} {
		var sign = 1.0
		if color == common.Black {
			sign = -1.0
		}
		var pocket = board.GetPocket(color)
		for kind := common.PieceKind(1); kind < common.PieceKind(len(pocket)); kind++ {
			material += sign * float64(PieceValue(kind)) * float64(pocket[kind])
		}

		for _, mv := range gen.Captures(color) {
			var victim = board.At(mv.To)
			if victim.IsEmpty() {
				continue
			}
			threats += sign * float64(PieceValue(victim.Kind))
		}
	}

	var turn = 1.0
	if board.Position.SideToMove == common.Black {
		turn = -1.0
	}

	var royal float64
	switch {
	case whiteRoyals == 1 && blackRoyals == 0:
		royal = weightRoyal
	case blackRoyals == 1 && whiteRoyals == 0:
		royal = -weightRoyal
	}

	var total = weightMaterial*material +
		weightMobility*mobility +
		weightResource*resource +
		weightPlacement*placement +
		weightThreats*threats +
		weightTurn*turn +
		royal

	return int(math.Round(total))
}
