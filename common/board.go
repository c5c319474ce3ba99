package common

// Board wraps a Position with the mutable history a game needs: a move
// log, a snapshot stack for Undo, and a running Zobrist hash kept in sync
// with the position incrementally rather than recomputed from scratch on
// every move.
type Board struct {
	Position Position
	Log      []Move
	Hash     uint64

	snapshots []Position
}

// NewBoard wraps pos, computing its starting hash from scratch once.
func NewBoard(pos Position) *Board {
	return &Board{Position: pos, Hash: ComputeHash(&pos)}
}

func (b *Board) At(sq Square) Piece {
	return b.Position.At(sq)
}

func (b *Board) GetPocket(color Color) Pocket {
	return b.Position.Pocket[color]
}

// Apply validates m against the generator's own legal output for the side
// to move and, if it isn't there, does nothing and reports false. A legal
// move snapshots the position, mutates the board, and folds m's hash delta
// into Hash.
func (b *Board) Apply(m Move) bool {
	if m.Color != b.Position.SideToMove {
		return false
	}
	if !moveIsLegal(NewGenerator(b).All(m.Color), m) {
		return false
	}

	b.Hash ^= HashDelta(&b.Position, m)
	b.snapshots = append(b.snapshots, b.Position)
	b.mutate(m)
	b.Log = append(b.Log, m)
	return true
}

func moveIsLegal(candidates []Move, m Move) bool {
	for _, cand := range candidates {
		if cand == m {
			return true
		}
	}
	return false
}

// Undo reverses the most recent Apply. With a snapshot available this
// restores the exact prior position and folds the same hash delta back in,
// which cancels the toggle Apply made (HashDelta's defining property).
// Without one — which should not happen outside of a corrupted call
// sequence — it falls back to popping the log and flipping the side to
// move, which keeps bookkeeping consistent even though the board itself
// cannot be reconstructed.
func (b *Board) Undo() {
	if len(b.Log) == 0 {
		return
	}
	var m = b.Log[len(b.Log)-1]
	b.Log = b.Log[:len(b.Log)-1]

	if len(b.snapshots) > 0 {
		b.Position = b.snapshots[len(b.snapshots)-1]
		b.snapshots = b.snapshots[:len(b.snapshots)-1]
		b.Hash ^= HashDelta(&b.Position, m)
		return
	}
	b.Position.SideToMove = m.Color
}

// mutate applies m's board-state effect. The legality check in Apply has
// already confirmed m came out of the generator, so every field it reads
// is trusted.
func (b *Board) mutate(m Move) {
	var pos = &b.Position

	switch m.Kind {
	case BoardMove, Promotion:
		var attacker = pos.At(m.From)
		var finalKind = attacker.Kind
		if m.Kind == Promotion {
			finalKind = m.PromotedKind
		}
		attacker.MoveStack--

		switch m.Threat {
		case Catch:
			if victim := pos.At(m.To); !victim.IsEmpty() {
				pos.Pocket[m.Color][victim.Kind]++
			}
			pos.Board[m.To] = Piece{}
			pos.Board[m.From] = attacker

		case Shift:
			var other = pos.At(m.To)
			pos.Board[m.From] = other
			pos.Board[m.To] = Piece{
				Color: m.Color, Kind: finalKind,
				MoveStack: attacker.MoveStack, StunStack: attacker.StunStack, IsRoyal: attacker.IsRoyal,
			}

		default: // Take, Move, TakeMove, TakeJump
			if victim := pos.At(m.To); !victim.IsEmpty() {
				pos.Pocket[m.Color][victim.Kind]++
			}
			pos.Board[m.From] = Piece{}
			pos.Board[m.To] = Piece{
				Color: m.Color, Kind: finalKind,
				MoveStack: attacker.MoveStack, StunStack: attacker.StunStack, IsRoyal: attacker.IsRoyal,
			}
		}

	case Drop:
		pos.Pocket[m.Color][m.PieceKind]--
		pos.Board[m.To] = NewPiece(m.Color, m.PieceKind, m.To)

	case Succession:
		var p = pos.At(m.To)
		p.IsRoyal = true
		pos.Board[m.To] = p
	}

	pos.SideToMove = m.Color.Opponent()
}

// Victory reports the side whose opponent has lost every royal piece, or
// NoColor if the game has not been decided (including the degenerate case
// where both sides are simultaneously royal-less).
func (b *Board) Victory() Color {
	var royals [2]int
	for sq := Square(0); int(sq) < BoardSize*BoardSize; sq++ {
		var p = b.Position.At(sq)
		if p.IsEmpty() || !p.IsRoyal {
			continue
		}
		royals[p.Color]++
	}
	switch {
	case royals[White] == 0 && royals[Black] != 0:
		return Black
	case royals[Black] == 0 && royals[White] != 0:
		return White
	default:
		return NoColor
	}
}
