package engine

import "github.com/fairyforge/vachess/common"

// Bot is the capability surface the search and evaluation core exposes:
// eval_pos, bestMove, bestLine, calcInfo, and the knobs that configure how
// they run. The two evaluators are two concrete values of the same
// Evaluate function type rather than an inheritance hierarchy, so swapping
// one in is just setting EvalKind.
type Bot struct {
	TransTable *TransTable
	Killers    KillerTable
	History    HistoryTable

	Color                common.Color
	FollowTurn           bool
	PlacementSample      int
	IterativeDeepening   bool
	UseAspiration        bool
	AspirationWindowBase int
	EvalKind             EvaluatorKind

	nodesSearched uint64
	board         *common.Board
	rootPV        []common.Move
}

// NewBot returns a ready-to-use bot: classic evaluator, iterative
// deepening and aspiration windows on, sampling 5 drops per node, 1 white.
func NewBot() *Bot {
	return &Bot{
		TransTable:           NewTransTable(defaultTransTableEntries),
		History:              NewHistoryTable(),
		Color:                common.White,
		FollowTurn:           true,
		PlacementSample:      defaultPlacementSample,
		IterativeDeepening:   true,
		UseAspiration:        true,
		AspirationWindowBase: 50,
		EvalKind:             Classic,
	}
}

func (b *Bot) SetFollowTurn(v bool)           { b.FollowTurn = v }
func (b *Bot) SetPlacementSample(n int)       { b.PlacementSample = n }
func (b *Bot) SetIterativeDeepening(v bool)   { b.IterativeDeepening = v }
func (b *Bot) SetUseAspiration(v bool)        { b.UseAspiration = v }
func (b *Bot) SetAspirationWindowBase(cp int) { b.AspirationWindowBase = cp }
func (b *Bot) SetNodesSearched(n uint64)      { b.nodesSearched = n }
func (b *Bot) GetNodesSearched() uint64       { return b.nodesSearched }

// ResetSearchData clears every table search accumulates across calls. It
// never fails and is safe to call on a bot that has never searched.
func (b *Bot) ResetSearchData() {
	b.Killers.Clear()
	b.History.Clear()
	b.TransTable.Clear()
	b.nodesSearched = 0
	b.rootPV = nil
}

// EvalPos evaluates pos with the configured evaluator, white-positive,
// independent of Color or any prior search.
func (b *Bot) EvalPos(pos common.Position) int {
	return evaluatorFor(b.EvalKind)(common.NewBoard(pos))
}

// BestMove returns the first move of the principal variation bestLine
// would return, or the empty move if none was found (including when
// FollowTurn is off and pos disagrees with Color).
func (b *Bot) BestMove(pos common.Position, depth int) common.Move {
	var _, pv = b.search(pos, depth)
	if len(pv) == 0 {
		return common.MoveNone
	}
	return pv[0]
}

// BestLine returns the final principal variation from searching pos to
// depth.
func (b *Bot) BestLine(pos common.Position, depth int) []common.Move {
	var _, pv = b.search(pos, depth)
	return pv
}

// CalcInfo bundles the search result: eval_val in the same white-positive
// convention EvalPos uses, the principal variation, and its first move.
func (b *Bot) CalcInfo(pos common.Position, depth int) (evalVal int, line []common.Move, bestMove common.Move) {
	var score, pv = b.search(pos, depth)
	var sign = 1
	if b.Color == common.Black {
		sign = -1
	}
	evalVal = score * sign
	line = pv
	if len(pv) > 0 {
		bestMove = pv[0]
	}
	return
}
