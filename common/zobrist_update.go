package common

// HashDelta computes the XOR delta for applying move m to pos, which must
// still be in its pre-move state. The same call, made again
// once the board has been restored to that same pre-move state by Undo,
// XORs the identical delta back in — two XORs of the same value cancel, so
// toggling a running hash with this delta before Apply and again after
// Undo is self-inverse by construction:
//
//	hash ^= HashDelta(pos, m)  // pos is pre-move
//	board.Apply(m)
//	...
//	board.Undo()               // pos is pre-move again
//	hash ^= HashDelta(pos, m)  // cancels the first toggle
//
// Captured pieces convert into the capturing side's pocket (this is the
// detail that made us realize the variant's "pocket" mechanic extends to
// captures, not just the initial allotment — see DESIGN.md), which is why
// a capturing board move also touches a pocket-key pair.
func HashDelta(pos *Position, m Move) uint64 {
	var delta uint64
	var player = m.Color
	delta ^= sideKey[player] ^ sideKey[player.Opponent()]

	switch m.Kind {
	case BoardMove, Promotion:
		var attacker = pos.At(m.From)
		delta ^= pieceKey[attacker.Kind][attacker.Color][m.From]

		var victim = pos.At(m.To)
		var captured = !victim.IsEmpty() && m.Threat != Shift
		if captured {
			delta ^= pieceKey[victim.Kind][victim.Color][m.To]
			delta ^= pocketDelta(player, victim.Kind, pos.Pocket[player][victim.Kind], pos.Pocket[player][victim.Kind]+1)
		}

		var finalKind = attacker.Kind
		if m.Kind == Promotion {
			finalKind = m.PromotedKind
		}

		switch m.Threat {
		case Catch:
			// Attacker never leaves From; only the victim's removal (above)
			// changes the hash, so the attacker's key goes back in.
			delta ^= pieceKey[attacker.Kind][attacker.Color][m.From]
		case Shift:
			delta ^= pieceKey[victim.Kind][victim.Color][m.To]
			delta ^= pieceKey[victim.Kind][victim.Color][m.From]
			delta ^= pieceKey[finalKind][player][m.To]
		default:
			delta ^= pieceKey[finalKind][player][m.To]
		}
	case Drop:
		delta ^= pocketDelta(m.Color, m.PieceKind, pos.Pocket[m.Color][m.PieceKind], pos.Pocket[m.Color][m.PieceKind]-1)
		delta ^= pieceKey[m.PieceKind][m.Color][m.To]
	case Succession:
		// No hashed effect: royalty is not part of the Zobrist key.
	}
	return delta
}

func pocketDelta(side Color, kind PieceKind, oldCount, newCount int) uint64 {
	return pocketKey[side][kind][clampPocketCount(oldCount)] ^
		pocketKey[side][kind][clampPocketCount(newCount)]
}

// DisguiseHashDelta is the hash maintenance a disguise move would need:
// XOR-remove the old kind, XOR-add the new kind, same square and color.
// The generator never emits disguises today (Generator.Disguises is an
// opaque, currently-empty collaborator — see DESIGN.md), so nothing in this
// module calls this yet; it exists so a future implementation has the
// matching hash update ready without having to rediscover the formula.
func DisguiseHashDelta(color Color, from, to PieceKind, sq Square) uint64 {
	return pieceKey[from][color][sq] ^ pieceKey[to][color][sq]
}
