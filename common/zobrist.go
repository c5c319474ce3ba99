package common

import "math/rand"

// MaxPocketCount clamps the pocket count axis of the Zobrist pocket-key
// table. Counts at or beyond the clamp still play correctly; they just
// share a hash slot with the clamp value, which is an accepted, documented
// collision (see DESIGN.md).
const MaxPocketCount = 32

var (
	pieceKey  [numPieceKinds][2][BoardSize * BoardSize]uint64
	pocketKey [2][numPieceKinds][MaxPocketCount]uint64
	sideKey   [2]uint64
)

func init() {
	// Fixed seed: these tables must come out identical on every run so
	// hashes computed in different processes (or in tests) agree. See
	// DESIGN.md for why a faster non-deterministic generator from the
	// example pack was rejected for this particular table.
	var r = rand.New(rand.NewSource(0))

	for kind := PieceKind(0); kind < numPieceKinds; kind++ {
		for color := 0; color < 2; color++ {
			for sq := 0; sq < BoardSize*BoardSize; sq++ {
				pieceKey[kind][color][sq] = r.Uint64()
			}
		}
	}
	for side := 0; side < 2; side++ {
		for kind := PieceKind(0); kind < numPieceKinds; kind++ {
			for count := 0; count < MaxPocketCount; count++ {
				pocketKey[side][kind][count] = r.Uint64()
			}
		}
	}
	sideKey[White] = r.Uint64()
	sideKey[Black] = r.Uint64()
}

func clampPocketCount(count int) int {
	if count < 0 {
		return 0
	}
	if count >= MaxPocketCount {
		return MaxPocketCount - 1
	}
	return count
}

// ComputeHash hashes a position from scratch. HashDelta's incremental
// updates must stay bit-identical to what a fresh call to this function
// would produce after the same sequence of moves and undos.
func ComputeHash(p *Position) uint64 {
	var key uint64
	for sq := 0; sq < BoardSize*BoardSize; sq++ {
		var piece = p.Board[sq]
		if piece.IsEmpty() {
			continue
		}
		key ^= pieceKey[piece.Kind][piece.Color][sq]
	}
	for _, side := range [2]Color{White, Black} {
		for kind := PieceKind(0); kind < numPieceKinds; kind++ {
			key ^= pocketKey[side][kind][clampPocketCount(p.Pocket[side][kind])]
		}
	}
	key ^= sideKey[p.SideToMove]
	return key
}
