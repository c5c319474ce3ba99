package common

import "sync"

// RegistryEntry is the read-only rule data for one (kind, color) pair:
// how it moves, and whether/how it promotes.
type RegistryEntry struct {
	Chunks            []MoveChunk
	IsPromotable      bool
	PromotePool       []PieceKind
	PromotableSquares map[Square]bool
}

// registryKey packs (kind, color) for the lookup map. Color matters only
// for geometry that is oriented (pawns, and any future rank-relative
// piece), but we key on the pair uniformly for a single lookup path.
type registryKey struct {
	Kind  PieceKind
	Color Color
}

var (
	registryOnce sync.Once
	registryData map[registryKey]RegistryEntry
)

// Registry returns the idempotent, lazily-built rule dictionary. Repeated
// calls return the same data; the map itself is never mutated after the
// first build, so concurrent reads are safe without further locking.
func Registry() map[registryKey]RegistryEntry {
	registryOnce.Do(buildRegistry)
	return registryData
}

// Lookup fetches the rule entry for a (kind, color) pair. Kinds that do not
// exist (or None) return the zero RegistryEntry: no chunks, not
// promotable. Lookup never fails.
func Lookup(kind PieceKind, color Color) RegistryEntry {
	return Registry()[registryKey{kind, color}]
}

// pawnPromotePool decides a previously open question on whether amazon
// belongs in a pawn's promotion pool: it does (see DESIGN.md), on top of
// the mandatory {queen, rook, bishop, knight} set.
var pawnPromotePool = []PieceKind{Queen, Rook, Bishop, Knight, Amazon}

func buildRegistry() {
	registryData = make(map[registryKey]RegistryEntry)

	for _, color := range []Color{White, Black} {
		put := func(kind PieceKind, entry RegistryEntry) {
			registryData[registryKey{kind, color}] = entry
		}

		put(King, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, allDirections8, 1)}})
		put(Queen, RegistryEntry{Chunks: []MoveChunk{sliderChunk(TakeMove, allDirections8, BoardSize)}})
		put(Rook, RegistryEntry{Chunks: []MoveChunk{sliderChunk(TakeMove, orthogonalDirections, BoardSize)}})
		put(Bishop, RegistryEntry{Chunks: []MoveChunk{sliderChunk(TakeMove, diagonalDirections, BoardSize)}})
		put(Knight, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, knightDirections, 1)}})

		put(Pawn, RegistryEntry{
			Chunks:            pawnChunks(color),
			IsPromotable:      true,
			PromotePool:       pawnPromotePool,
			PromotableSquares: rankSquares(promotionRank(color)),
		})

		put(Amazon, RegistryEntry{Chunks: []MoveChunk{
			sliderChunk(TakeMove, allDirections8, BoardSize),
			leaperChunk(TakeMove, knightDirections, 1),
		}})
		put(Archbishop, RegistryEntry{Chunks: []MoveChunk{
			sliderChunk(TakeMove, diagonalDirections, BoardSize),
			leaperChunk(TakeMove, knightDirections, 1),
		}})
		put(Centaur, RegistryEntry{Chunks: []MoveChunk{
			leaperChunk(TakeMove, allDirections8, 1),
			leaperChunk(TakeMove, knightDirections, 1),
		}})
		put(Knightrider, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, knightDirections, BoardSize)}})
		put(Dababba, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, scaledDirections(orthogonalDirections, 2), 1)}})
		put(Alfil, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, scaledDirections(diagonalDirections, 2), 1)}})
		put(Ferz, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, diagonalDirections, 1)}})
		put(Camel, RegistryEntry{Chunks: []MoveChunk{leaperChunk(TakeMove, camelDirections, 1)}})
		put(Grasshopper, RegistryEntry{Chunks: []MoveChunk{sliderChunk(TakeJump, allDirections8, BoardSize)}})
		put(TempestRook, RegistryEntry{Chunks: tempestRookChunks()})
	}
}

func sliderChunk(tm ThreatMode, dirs []Direction, maxDist int) MoveChunk {
	return MoveChunk{Threat: tm, Directions: dirs, MaxDistance: maxDist}
}

func leaperChunk(tm ThreatMode, dirs []Direction, maxDist int) MoveChunk {
	return MoveChunk{Threat: tm, Directions: dirs, MaxDistance: maxDist}
}

func scaledDirections(dirs []Direction, factor int) []Direction {
	var result = make([]Direction, len(dirs))
	for i, d := range dirs {
		result[i] = Direction{d.DX * factor, d.DY * factor}
	}
	return result
}

func pawnChunks(color Color) []MoveChunk {
	var forward = 1
	if color == Black {
		forward = -1
	}
	return []MoveChunk{
		sliderChunk(MoveQuiet, []Direction{{0, forward}}, 1),
		sliderChunk(Take, []Direction{{-1, forward}, {1, forward}}, 1),
	}
}

func promotionRank(color Color) int {
	if color == White {
		return BoardSize - 1
	}
	return 0
}

func rankSquares(rank int) map[Square]bool {
	var result = make(map[Square]bool, BoardSize)
	for file := 0; file < BoardSize; file++ {
		result[MakeSquare(file, rank)] = true
	}
	return result
}

// tempestRookChunks implements the "four corner rook" piece: it attacks as
// if a rook stood on each of its four diagonally adjacent squares, sliding
// away from the piece along the two orthogonal directions that corner
// opens onto (not all four, which would have each corner re-cover the
// squares between it and the piece and duplicate its neighbors' coverage).
func tempestRookChunks() []MoveChunk {
	var corners = []struct {
		Offset Direction
		Away   []Direction
	}{
		{Direction{1, 1}, []Direction{{0, 1}, {1, 0}}},
		{Direction{1, -1}, []Direction{{1, 0}, {0, -1}}},
		{Direction{-1, 1}, []Direction{{0, 1}, {-1, 0}}},
		{Direction{-1, -1}, []Direction{{0, -1}, {-1, 0}}},
	}
	var chunks = make([]MoveChunk, len(corners))
	for i, corner := range corners {
		chunks[i] = MoveChunk{
			Threat:       TakeMove,
			OriginOffset: corner.Offset,
			Directions:   corner.Away,
			MaxDistance:  BoardSize,
		}
	}
	return chunks
}

var (
	orthogonalDirections = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirections   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirections8       = append(append([]Direction{}, orthogonalDirections...), diagonalDirections...)
	knightDirections     = []Direction{
		{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
		{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
	}
	camelDirections = []Direction{
		{1, 3}, {3, 1}, {-1, 3}, {-3, 1},
		{1, -3}, {3, -1}, {-1, -3}, {-3, -1},
	}
)

// InitialStun returns the deterministic starting stun-stack value for a
// fresh piece of kind/color placed on the given rank. Pawns are
// rank-specialised; everything else is a flat constant.
func InitialStun(kind PieceKind, color Color, rank int) int {
	if kind == Pawn {
		if color == White {
			return 8 - rank
		}
		return rank + 1
	}
	switch kind {
	case King:
		return 4
	case Queen:
		return 9
	case Rook:
		return 5
	case Bishop, Knight, Camel:
		return 3
	case Knightrider, TempestRook:
		return 7
	case Archbishop:
		return 6
	case Dababba, Alfil:
		return 2
	case Amazon:
		return 13
	case Ferz:
		return 1
	case Centaur:
		return 5
	case Grasshopper:
		return 4
	default:
		return 0
	}
}
