package engine

import "github.com/fairyforge/vachess/common"

// killerPair is the two-killer-per-ply shape kept as named fields rather
// than a slice, since there are never more than two.
type killerPair struct {
	Killer1 common.Move
	Killer2 common.Move
}

// KillerTable holds one killerPair per ply.
type KillerTable [MaxPly]killerPair

func (kt *KillerTable) Clear() {
	for i := range kt {
		kt[i] = killerPair{}
	}
}

func (kt *KillerTable) IsKiller(ply int, m common.Move) bool {
	var pair = kt[ply]
	return m == pair.Killer1 || m == pair.Killer2
}

// Update records m as the newest killer at ply, demoting the previous
// killer1 to killer2. A move already in the pair is not duplicated.
func (kt *KillerTable) Update(ply int, m common.Move) {
	var pair = &kt[ply]
	if pair.Killer1 == m {
		return
	}
	pair.Killer2 = pair.Killer1
	pair.Killer1 = m
}

// HistoryTable scores moves by a packed move key, rewarded on cutoffs by
// depth²+1.
type HistoryTable map[uint32]int

func NewHistoryTable() HistoryTable {
	return make(HistoryTable)
}

func (ht HistoryTable) Clear() {
	for k := range ht {
		delete(ht, k)
	}
}

func (ht HistoryTable) Score(m common.Move) int {
	return ht[m.Key()]
}

func (ht HistoryTable) Reward(m common.Move, depth int) {
	ht[m.Key()] += depth*depth + 1
}
