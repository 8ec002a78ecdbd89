// Package selector picks the weakest cuts in a store for eviction, breaking
// trust ties on cut age. See spec §4.3.
package selector

import "sort"

// ChooseToRemove returns the m weakest slot indices, ascending by
// (trust[i], ids[i]) — index 0 is the single weakest cut, and the last
// entry is the strongest among the chosen (spec §4.5 calls it "the most
// defensible eviction victim", since the eviction-retraction loop consumes
// the returned slice from that end inward).
//
// trust and ids must be the same length and aligned to store row order.
// m must not exceed len(trust).
func ChooseToRemove(trust []float64, ids []int64, m int) []int {
	if m <= 0 {
		return nil
	}
	n := len(trust)
	if m == 1 {
		best := 0
		for i := 1; i < n; i++ {
			if trust[i] < trust[best] || (trust[i] == trust[best] && ids[i] < ids[best]) {
				best = i
			}
		}
		return []int{best}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if trust[a] != trust[b] {
			return trust[a] < trust[b]
		}
		return ids[a] < ids[b]
	})
	return idx[:m]
}
