// Package engine holds the search and evaluation core: move ordering,
// alpha-beta with quiescence and iterative deepening, the transposition
// table, and the two evaluators that feed it.
package engine

import "github.com/fairyforge/vachess/common"

const (
	MaxPly    = 64
	MaxQDepth = 32

	// MateScore must be far enough from any real evaluation that
	// ±(MateScore-ply) never collides with a normal score.
	MateScore = 30000
	Infinity  = MateScore + 1

	turnValue   = 0.3
	stunOnPlace = 3.0

	defaultPlacementSample = 5
)

// EvaluatorKind selects which of the two evaluators a search uses, and
// which drop-sampling placement formula goes with it.
type EvaluatorKind int

const (
	Classic EvaluatorKind = iota
	Weighted
)

// Evaluate maps a position to a centipawn-scale score, positive favoring
// white.
type Evaluate func(board *common.Board) int

func evaluatorFor(kind EvaluatorKind) Evaluate {
	if kind == Weighted {
		return EvaluateWeighted
	}
	return EvaluateClassic
}
