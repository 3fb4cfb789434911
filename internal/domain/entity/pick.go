package entity

import "sort"

// MaxTicketPicks is the number of picks a complete ticket carries.
const MaxTicketPicks = 6

// NumberPick is the canonical shape of one picked number with its weight.
// Every stored nums array holds picks in non-increasing Rate order.
type NumberPick struct {
	Value  int  `json:"value"`
	Rate   int  `json:"rate"`
	Status bool `json:"status"`
}

// SortPicksByRateDesc normalizes a picks slice into non-increasing Rate order.
// The sort is stable so equal-rate picks keep their input order. Called at the
// storage boundary on every write; reads can rely on the invariant.
func SortPicksByRateDesc(picks []NumberPick) {
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Rate > picks[j].Rate
	})
}

// PicksSortedByRateDesc reports whether the slice already satisfies the ordering invariant.
func PicksSortedByRateDesc(picks []NumberPick) bool {
	for i := 1; i < len(picks); i++ {
		if picks[i-1].Rate < picks[i].Rate {
			return false
		}
	}

	return true
}
