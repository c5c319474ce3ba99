package engine

import "github.com/fairyforge/vachess/common"

// search runs the configured iterative-deepening (or single-depth) alpha-
// beta search from pos and returns the bot-signed score and the principal
// variation it found.
func (b *Bot) search(pos common.Position, depth int) (int, []common.Move) {
	if depth < 1 {
		depth = 1
	}
	if b.FollowTurn {
		b.Color = pos.SideToMove
	} else if pos.SideToMove != b.Color {
		return 0, nil
	}

	b.board = common.NewBoard(pos)
	b.rootPV = nil

	if !b.IterativeDeepening {
		var score, pv = b.alphaBeta(depth, 0, -Infinity, Infinity)
		b.rootPV = pv
		return score, pv
	}

	var score int
	var pv []common.Move
	var lastScore int
	for d := 1; d <= depth; d++ {
		var alpha, beta = -Infinity, Infinity
		var aspirated = d > 1 && b.UseAspiration
		if aspirated {
			alpha = lastScore - b.AspirationWindowBase
			beta = lastScore + b.AspirationWindowBase
		}

		var s, line = b.alphaBeta(d, 0, alpha, beta)
		if aspirated && (s <= alpha || s >= beta) {
			s, line = b.alphaBeta(d, 0, -Infinity, Infinity)
		}

		lastScore = s
		if len(line) > 0 {
			score, pv = s, line
			b.rootPV = line
		}
	}
	return score, pv
}

// valueForBot converts the configured evaluator's white-positive score
// into the bot-positive convention every score in this search uses.
func (b *Bot) valueForBot() int {
	var raw = evaluatorFor(b.EvalKind)(b.board)
	if b.Color == common.Black {
		return -raw
	}
	return raw
}

// generateOrderedMoves concatenates every move family for player — a
// sampled, scored drop list first, then board moves, successions, and
// disguises — then orders the whole set by the ply's PV/SEE/killer/
// history priorities.
func (b *Bot) generateOrderedMoves(gen *common.Generator, player common.Color, ply int) []common.Move {
	var moves = SampleDrops(gen.Drops(player), b.EvalKind, b.PlacementSample)
	for sq := common.Square(0); int(sq) < common.BoardSize*common.BoardSize; sq++ {
		var p = b.board.At(sq)
		if p.IsEmpty() || p.Color != player {
			continue
		}
		moves = append(moves, gen.MovesOf(player, sq, false)...)
	}
	moves = append(moves, gen.Successions(player)...)
	moves = append(moves, gen.Disguises(player)...)

	var pv common.Move
	if ply < len(b.rootPV) {
		pv = b.rootPV[ply]
	}
	OrderMoves(b.board, moves, pv, b.Killers[ply], b.History)
	return moves
}

// alphaBeta implements search(depth, alpha, beta, ply): every score
// returned is bot-positive, so the node for whichever
// side is NOT the bot minimizes rather than negating and recursing
// negamax-style.
func (b *Bot) alphaBeta(depth, ply int, alpha, beta int) (int, []common.Move) {
	b.nodesSearched++

	if depth == 0 {
		return b.quiescence(alpha, beta, 0, ply), nil
	}

	var originalAlpha, originalBeta = alpha, beta
	var hash = b.board.Hash
	if ttDepth, ttValue, ttBound, ttMove, ok := b.TransTable.Probe(hash); ok && ttDepth >= depth {
		switch ttBound {
		case Exact:
			if ttMove.IsNone() {
				return ttValue, nil
			}
			return ttValue, []common.Move{ttMove}
		case Lower:
			if ttValue > alpha {
				alpha = ttValue
			}
		case Upper:
			if ttValue < beta {
				beta = ttValue
			}
		}
		if alpha >= beta {
			return ttValue, nil
		}
	}

	var player = b.board.Position.SideToMove
	var gen = common.NewGenerator(b.board)
	var moves = b.generateOrderedMoves(gen, player, ply)
	if len(moves) == 0 {
		return b.valueForBot(), nil
	}

	var maximizing = player == b.Color
	var best int
	if maximizing {
		best = -Infinity
	} else {
		best = Infinity
	}
	var bestMove = common.MoveNone
	var bestChildPV []common.Move

	for _, m := range moves {
		if !b.board.Apply(m) {
			continue
		}

		var score int
		var childPV []common.Move
		if winner := b.board.Victory(); winner != common.NoColor {
			if winner == b.Color {
				score = MateScore - ply
			} else {
				score = -(MateScore - ply)
			}
		} else {
			score, childPV = b.alphaBeta(depth-1, ply+1, alpha, beta)
		}
		b.board.Undo()

		if maximizing {
			if score > best {
				best, bestMove, bestChildPV = score, m, childPV
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best, bestMove, bestChildPV = score, m, childPV
			}
			if best < beta {
				beta = best
			}
		}

		if alpha >= beta {
			b.Killers.Update(ply, m)
			b.History.Reward(m, depth)
			break
		}
	}

	var bound Bound
	switch {
	case best <= originalAlpha:
		bound = Upper
	case best >= originalBeta:
		bound = Lower
	default:
		bound = Exact
	}
	b.TransTable.Store(hash, depth, best, bound, bestMove)

	var pv []common.Move
	if !bestMove.IsNone() {
		pv = append([]common.Move{bestMove}, bestChildPV...)
	}
	return best, pv
}

// quiescence extends a leaf with captures and promotions only, stand-pat
// bounded by the static evaluation, capped at MaxQDepth plies in.
func (b *Bot) quiescence(alpha, beta, qDepth, ply int) int {
	b.nodesSearched++

	var standPat = b.valueForBot()
	if qDepth >= MaxQDepth {
		return standPat
	}

	var player = b.board.Position.SideToMove
	var maximizing = player == b.Color
	var best = standPat
	if maximizing {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	var gen = common.NewGenerator(b.board)
	var captures = gen.Captures(player)
	OrderMoves(b.board, captures, common.MoveNone, killerPair{}, nil)

	for _, m := range captures {
		if !b.board.Apply(m) {
			continue
		}

		var score int
		if winner := b.board.Victory(); winner != common.NoColor {
			if winner == b.Color {
				score = MateScore - ply
			} else {
				score = -(MateScore - ply)
			}
		} else {
			score = b.quiescence(alpha, beta, qDepth+1, ply+1)
		}
		b.board.Undo()

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
