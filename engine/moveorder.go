package engine

import (
	"math"
	"sort"

	"github.com/fairyforge/vachess/common"
)

type scoredMove struct {
	move     common.Move
	isPV     bool
	see      int
	isKiller bool
	hist     int
}

// OrderMoves sorts moves in place by descending (isPV, see, isKiller,
// hist), each field compared only when the higher-priority fields tie.
// The sort is stable, so two moves with an identical tuple keep whatever
// order the generator produced them in.
func OrderMoves(board *common.Board, moves []common.Move, pv common.Move, killers killerPair, hist HistoryTable) {
	var scored = make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{
			move:     m,
			isPV:     m == pv,
			see:      seeEstimate(board, m),
			isKiller: m == killers.Killer1 || m == killers.Killer2,
			hist:     hist.Score(m),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		var a, b = scored[i], scored[j]
		if a.isPV != b.isPV {
			return a.isPV
		}
		if a.see != b.see {
			return a.see > b.see
		}
		if a.isKiller != b.isKiller {
			return a.isKiller
		}
		return a.hist > b.hist
	})
	for i := range scored {
		moves[i] = scored[i].move
	}
}

// seeEstimate is the cheap static-exchange estimate used purely for
// ordering: victim value minus attacker value for a capture, promoted
// value minus a pawn's for a promotion, zero otherwise. It is not the full
// walk-the-exchange algorithm — nothing in this search needs that, since
// the weighted evaluator's Threats term only sums current capture values.
func seeEstimate(board *common.Board, m common.Move) int {
	switch m.Kind {
	case common.Promotion:
		return PieceValue(m.PromotedKind) - PieceValue(common.Pawn)
	case common.BoardMove:
		if m.Threat == common.Shift {
			return 0
		}
		var victim = board.At(m.To)
		if victim.IsEmpty() {
			return 0
		}
		return PieceValue(victim.Kind) - PieceValue(m.PieceKind)
	default:
		return 0
	}
}

const centreFile, centreRank = 3.5, 3.5

func centreDistance(sq common.Square) float64 {
	var df = float64(sq.File()) - centreFile
	var dr = float64(sq.Rank()) - centreRank
	return math.Sqrt(df*df + dr*dr)
}

// placementScore ranks a drop for sampling purposes. The classic branch
// reproduces a degenerate formula verbatim: |-1|^distance is always 1
// regardless of distance, and the negative base flips its sign, so the
// term collapses to a constant -turnValue offset independent of where the
// piece would land. That is documented as an accepted, faithfully kept
// peculiarity rather than a bug (see DESIGN.md) — the upstream rule
// explicitly calls this out as deliberate, not an oversight to silently
// "fix" into something that actually varies by square.
func placementScore(kind common.PieceKind, sq common.Square, evalKind EvaluatorKind) float64 {
	var base = float64(PieceValue(kind))
	if evalKind == Weighted {
		return base * math.Exp(-0.35*centreDistance(sq))
	}
	return base - turnValue
}

// SampleDrops scores drops and truncates to at most sampleSize, the
// highest-scoring first. A stable sort keeps ties (which, given the
// classic formula above, is most of them) in generator order.
func SampleDrops(drops []common.Move, evalKind EvaluatorKind, sampleSize int) []common.Move {
	if sampleSize <= 0 {
		sampleSize = defaultPlacementSample
	}
	var scores = make([]float64, len(drops))
	for i, d := range drops {
		scores[i] = placementScore(d.PieceKind, d.To, evalKind)
	}
	var idx = make([]int, len(drops))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	if sampleSize > len(drops) {
		sampleSize = len(drops)
	}
	var out = make([]common.Move, sampleSize)
	for i := 0; i < sampleSize; i++ {
		out[i] = drops[idx[i]]
	}
	return out
}
