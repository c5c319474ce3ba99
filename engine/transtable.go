package engine

import "github.com/fairyforge/vachess/common"

// Bound is the kind of value a transposition-table entry stores relative
// to the window it was produced with.
type Bound int

const (
	Exact Bound = iota
	Lower
	Upper
)

type ttEntry struct {
	key   uint64
	value int32
	depth int8
	bound Bound
	best  common.Move
}

// TransTable is a direct-mapped, depth-prefer transposition table: a slot
// is replaced when empty, when its key already matches, or when the
// incoming depth is at least as deep as what is stored, and otherwise left
// alone. Single search instance, single thread: no locking, mirroring the
// project's ban on multi-threaded search.
type TransTable struct {
	entries []ttEntry
	mask    uint64
}

const defaultTransTableEntries = 1 << 18

// NewTransTable builds a table sized to the next power of two at or below
// entryCount (at least 1).
func NewTransTable(entryCount int) *TransTable {
	if entryCount <= 0 {
		entryCount = defaultTransTableEntries
	}
	var size = roundDownPowerOfTwo(entryCount)
	return &TransTable{
		entries: make([]ttEntry, size),
		mask:    uint64(size - 1),
	}
}

func roundDownPowerOfTwo(n int) int {
	var x = 1
	for (x << 1) <= n {
		x <<= 1
	}
	return x
}

func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttEntry{}
	}
}

// Probe returns the stored entry for hash, iff its key matches. A
// collision on the slot with a different key is reported as a miss, never
// as a hit with stale content.
func (tt *TransTable) Probe(hash uint64) (depth int, value int, bound Bound, best common.Move, ok bool) {
	var entry = &tt.entries[hash&tt.mask]
	if entry.key != hash {
		return 0, 0, Exact, common.MoveNone, false
	}
	return int(entry.depth), int(entry.value), entry.bound, entry.best, true
}

// Store applies depth-prefer replacement at hash's slot.
func (tt *TransTable) Store(hash uint64, depth, value int, bound Bound, best common.Move) {
	var entry = &tt.entries[hash&tt.mask]
	if entry.key == 0 || entry.key == hash || depth >= int(entry.depth) {
		entry.key = hash
		entry.value = int32(value)
		entry.depth = int8(depth)
		entry.bound = bound
		entry.best = best
	}
}
