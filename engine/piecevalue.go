package engine

import "github.com/fairyforge/vachess/common"

// pieceValues holds the centipawn value of every kind, indexed by
// common.PieceKind. None is unused (zero).
var pieceValues = [...]int{
	common.None:        0,
	common.King:        400,
	common.Queen:       900,
	common.Bishop:      330,
	common.Knight:      320,
	common.Rook:        500,
	common.Pawn:        100,
	common.Amazon:      1400,
	common.Grasshopper: 280,
	common.Knightrider: 650,
	common.Archbishop:  800,
	common.Dababba:     250,
	common.Alfil:       250,
	common.Ferz:        150,
	common.Centaur:     700,
	common.Camel:       450,
	common.TempestRook: 700,
}

// PieceValue returns the centipawn value of kind. Unknown kinds, notably
// common.None, are worth nothing.
func PieceValue(kind common.PieceKind) int {
	if int(kind) < 0 || int(kind) >= len(pieceValues) {
		return 0
	}
	return pieceValues[kind]
}
