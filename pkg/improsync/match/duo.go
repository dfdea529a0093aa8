// Package match quantifies synchronization between performers by counting
// near-simultaneous IG timestamps, pairwise (duos) and three-way (trios).
package match

import (
	"sort"

	"github.com/freeimpro/improsync/pkg/improsync/events"
)

// Params carries the knobs shared by the duo and trio aggregators.
type Params struct {
	// Tau is the timescale over which timestamps count as matching. It is
	// also the tolerance used to deduplicate the input sets when Clean is
	// set.
	Tau int
	// Causal restricts matching to x -> y responses: a timestamp of y
	// matches only if it occurs at or after the triggering timestamp of x.
	Causal bool
	// Clean deduplicates the input sets and the match sets with tolerance
	// Tau. When false, only exactly repeated timestamps are merged.
	Clean bool
	// Fraction normalizes the counts by the per-performer event counts and
	// returns a fraction instead of a raw count.
	Fraction bool
}

// Duo returns the timestamps of indY that match a timestamp of indX.
//
// A timestamp y matches x when |y-x| <= tau, or, in causal mode, when
// x <= y <= x+tau (y is a response to x). A y timestamp close to several x
// timestamps is collected once per match, so the accumulated set may hold
// repeats; the result is sorted and then deduplicated, with tolerance tau
// when clean is set and 0 otherwise.
//
// Duo is not symmetric: it reports matched y values, not matched x values,
// and deduplication acts on those, so Duo(a, b, ...) and Duo(b, a, ...)
// generally differ even without causality.
func Duo(indX, indY []int, tau int, causal, clean bool) []int {
	var found []int
	for _, x := range indX {
		for _, y := range indY {
			if causal {
				if x <= y && y-x <= tau {
					found = append(found, y)
				}
			} else if abs(y-x) <= tau {
				found = append(found, y)
			}
		}
	}
	sort.Ints(found)
	if clean {
		return events.Dedupe(found, tau)
	}
	return events.Dedupe(found, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
