package common

// Generator produces moves for a single board. It holds no state of its
// own beyond a pointer back to the board it was built for, so building one
// is free and callers are expected to do it per query rather than cache it.
type Generator struct {
	Board *Board
}

// NewGenerator binds a Generator to b.
func NewGenerator(b *Board) *Generator {
	return &Generator{Board: b}
}

// Drops lists every legal drop for color: one pocket kind onto one empty
// square, excluding a promotable kind's own promotion squares. The very first two plies of a standard
// (non-custom) starting position restrict drops to the king only, so a
// fresh game cannot flood the board with pocket pieces before either side
// has even placed their royal.
func (g *Generator) Drops(color Color) []Move {
	var pos = &g.Board.Position
	var kingOnly = !pos.Custom && len(g.Board.Log) < 2
	var moves []Move

	for kind := PieceKind(1); kind < numPieceKinds; kind++ {
		if pos.Pocket[color][kind] <= 0 {
			continue
		}
		if kingOnly && kind != King {
			continue
		}
		var entry = Lookup(kind, color)
		for sq := Square(0); int(sq) < BoardSize*BoardSize; sq++ {
			if !pos.At(sq).IsEmpty() {
				continue
			}
			if entry.IsPromotable && entry.PromotableSquares[sq] {
				continue
			}
			moves = append(moves, Move{Kind: Drop, Color: color, From: SquareNone, To: sq, PieceKind: kind})
		}
	}
	return moves
}

// MovesOf generates every move the piece on sq can make. When potential is
// false (the only mode the search or Board.Apply may use), a piece with a
// spent move-stack or an active stun-stack generates nothing. potential
// mode ignores both gates and exists only to feed the evaluators' action
// counts (the classic per-piece term and the weighted mobility term) — it
// must never be fed back into the game itself.
func (g *Generator) MovesOf(color Color, sq Square, potential bool) []Move {
	var pos = &g.Board.Position
	var piece = pos.At(sq)
	if piece.IsEmpty() || piece.Color != color {
		return nil
	}
	if !potential && !piece.CanAct() {
		return nil
	}

	var entry = Lookup(piece.Kind, color)
	var moves []Move
	for _, chunk := range entry.Chunks {
		for _, mv := range walkChunk(pos, color, sq, chunk) {
			mv.PieceKind = piece.Kind
			if entry.IsPromotable && entry.PromotableSquares[mv.To] {
				for _, promoted := range entry.PromotePool {
					var pm = mv
					pm.Kind = Promotion
					pm.PromotedKind = promoted
					moves = append(moves, pm)
				}
				continue
			}
			mv.Kind = BoardMove
			moves = append(moves, mv)
		}
	}
	return moves
}

// walkChunk applies one MoveChunk's walk policy from sq, emitting
// unfinished moves (Kind left NoMoveKind, PieceKind left unset — the
// caller fills those in).
func walkChunk(pos *Position, color Color, sq Square, chunk MoveChunk) []Move {
	var anchorFile = sq.File() + chunk.OriginOffset.DX
	var anchorRank = sq.Rank() + chunk.OriginOffset.DY
	var moves []Move

	for _, dir := range chunk.Directions {
		for dist := 1; dist <= chunk.MaxDistance; dist++ {
			var target = MakeSquare(anchorFile+dir.DX*dist, anchorRank+dir.DY*dist)
			if target == SquareNone {
				break
			}
			var cell = pos.At(target)

			switch chunk.Threat {
			case Catch:
				if cell.IsEmpty() {
					continue
				}
				if cell.Color != color {
					moves = append(moves, Move{Color: color, Threat: Catch, From: sq, To: target})
				}
			case Take:
				if cell.IsEmpty() {
					continue
				}
				if cell.Color != color {
					moves = append(moves, Move{Color: color, Threat: Take, From: sq, To: target})
				}
			case MoveQuiet:
				if cell.IsEmpty() {
					moves = append(moves, Move{Color: color, Threat: MoveQuiet, From: sq, To: target})
					continue
				}
			case TakeMove:
				if cell.IsEmpty() {
					moves = append(moves, Move{Color: color, Threat: TakeMove, From: sq, To: target})
					continue
				}
				if cell.Color != color {
					moves = append(moves, Move{Color: color, Threat: TakeMove, From: sq, To: target})
				}
			case Shift:
				if cell.IsEmpty() {
					continue
				}
				moves = append(moves, Move{Color: color, Threat: Shift, From: sq, To: target})
			case TakeJump:
				if cell.IsEmpty() {
					continue
				}
				var landing = MakeSquare(target.File()+dir.DX, target.Rank()+dir.DY)
				if landing == SquareNone {
					break
				}
				var landingCell = pos.At(landing)
				if !landingCell.IsEmpty() && landingCell.Color == color {
					break
				}
				moves = append(moves, Move{Color: color, Threat: TakeJump, From: sq, To: landing})
			}

			// Every threat mode that reaches an occupied square stops the
			// slide in this direction, whether or not it emitted a move.
			break
		}
	}
	return moves
}

// Successions lists, for every non-royal piece of color, the move that
// would crown it.
func (g *Generator) Successions(color Color) []Move {
	var pos = &g.Board.Position
	var moves []Move
	for sq := Square(0); int(sq) < BoardSize*BoardSize; sq++ {
		var p = pos.At(sq)
		if p.IsEmpty() || p.Color != color || p.IsRoyal {
			continue
		}
		moves = append(moves, Move{Kind: Succession, Color: color, From: SquareNone, To: sq, PieceKind: p.Kind})
	}
	return moves
}

// Disguises is an opaque collaborator: some future rule family that lets a
// piece swap identity in place. No such rule is implemented, so this
// always returns no moves; All still calls it so that filling it in later
// needs no other change.
func (g *Generator) Disguises(color Color) []Move {
	return nil
}

// All concatenates every move family for color: drops, board moves
// (including promotions), successions, and disguises.
func (g *Generator) All(color Color) []Move {
	var moves = g.Drops(color)
	for sq := Square(0); int(sq) < BoardSize*BoardSize; sq++ {
		var p = g.Board.Position.At(sq)
		if p.IsEmpty() || p.Color != color {
			continue
		}
		moves = append(moves, g.MovesOf(color, sq, false)...)
	}
	moves = append(moves, g.Successions(color)...)
	moves = append(moves, g.Disguises(color)...)
	return moves
}

// Captures restricts All to the subset quiescence search is allowed to
// explore: promotions unconditionally, plus any board move that lands on
// an enemy piece. A shift swaps two pieces without removing either, so it
// never counts as a capture even when its target is occupied by an enemy.
func (g *Generator) Captures(color Color) []Move {
	var pos = &g.Board.Position
	var out []Move
	for _, mv := range g.All(color) {
		if mv.Kind == Promotion {
			out = append(out, mv)
			continue
		}
		if mv.Kind != BoardMove || mv.Threat == Shift {
			continue
		}
		var target = pos.At(mv.To)
		if !target.IsEmpty() && target.Color != color {
			out = append(out, mv)
		}
	}
	return out
}
