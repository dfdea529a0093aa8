package events

// Dedupe collapses timestamps that are too close together to be considered
// distinct events, keeping the earlier one of each offending pair.
//
// Two consecutive timestamps are indistinguishable when their gap is <= tau;
// with tau == 0 only exactly repeated timestamps are merged. Each pass marks
// every timestamp whose gap to its predecessor in the current set is <= tau,
// removes all marked timestamps at once, and re-evaluates the reduced set,
// until the minimal gap exceeds tau or at most one timestamp remains.
// Removal changes adjacency, so a single pass is not enough: [0,2,4] with
// tau 2 collapses to [0], not [0,4].
//
// The input must be sorted ascending. The caller's slice is never mutated;
// when the set is already clean it is returned as-is.
func Dedupe(ts []int, tau int) []int {
	cur := ts
	for len(cur) > 1 {
		minGap := cur[1] - cur[0]
		for i := 2; i < len(cur); i++ {
			if g := cur[i] - cur[i-1]; g < minGap {
				minGap = g
			}
		}
		if minGap > tau {
			return cur
		}
		next := make([]int, 0, len(cur))
		next = append(next, cur[0])
		for i := 1; i < len(cur); i++ {
			if cur[i]-cur[i-1] > tau {
				next = append(next, cur[i])
			}
		}
		cur = next
	}
	return cur
}
