package match

import "github.com/freeimpro/improsync/pkg/improsync/events"

// CountDuos returns the total number of duo matches found between the three
// performers of a trio, counting all 6 ordered pairs and halving the sum, so
// each undirected pair is counted once on average.
//
// When p.Clean is set the three input sets are deduplicated with tolerance
// p.Tau before matching. In fraction mode each directional count is first
// normalized: the counts reported against performer 1's events (2->1, 3->1)
// divide by |IG1|, those against performer 2 (3->2, 1->2) by |IG2|, and
// those against performer 3 (1->3, 2->3) by |IG3|. A performer with no
// events leaves its terms unnormalized rather than dividing by zero. The
// halved sum is further divided by 3 in fraction mode.
//
// The halving can produce half-integer results on asymmetric counts, so the
// result is a float even outside fraction mode.
func CountDuos(ts1, ts2, ts3 []int, p Params) float64 {
	ig1, ig2, ig3, n1, n2, n3 := prepare(ts1, ts2, ts3, p)

	nb12 := float64(len(Duo(ig1, ig2, p.Tau, p.Causal, p.Clean)))
	nb13 := float64(len(Duo(ig1, ig3, p.Tau, p.Causal, p.Clean)))
	nb23 := float64(len(Duo(ig2, ig3, p.Tau, p.Causal, p.Clean)))
	nb21 := float64(len(Duo(ig2, ig1, p.Tau, p.Causal, p.Clean)))
	nb31 := float64(len(Duo(ig3, ig1, p.Tau, p.Causal, p.Clean)))
	nb32 := float64(len(Duo(ig3, ig2, p.Tau, p.Causal, p.Clean)))

	if p.Fraction {
		if n1 > 0 {
			nb21 /= float64(n1)
			nb31 /= float64(n1)
		}
		if n2 > 0 {
			nb32 /= float64(n2)
			nb12 /= float64(n2)
		}
		if n3 > 0 {
			nb13 /= float64(n3)
			nb23 /= float64(n3)
		}
	}

	result := (nb12 + nb13 + nb23 + nb21 + nb31 + nb32) / 2
	if p.Fraction {
		result /= 3
	}
	return result
}

// CountTrios returns the total number of three-way coincidences found in a
// trio, derived by intersecting duo-match evidence across all three pairs.
//
// The 6 directional duo match sequences are concatenated pairwise into
// undirected evidence sets duo12, duo13 and duo23; trio matches for
// performer k are the duo matches between the two evidence sets involving k,
// symmetrized the same way and halved. Fraction mode normalizes each trio
// count by the corresponding performer's event count (skipping empty sets)
// and divides the sum by 3.
func CountTrios(ts1, ts2, ts3 []int, p Params) float64 {
	ig1, ig2, ig3, n1, n2, n3 := prepare(ts1, ts2, ts3, p)

	duo12 := Duo(ig1, ig2, p.Tau, p.Causal, p.Clean)
	duo13 := Duo(ig1, ig3, p.Tau, p.Causal, p.Clean)
	duo23 := Duo(ig2, ig3, p.Tau, p.Causal, p.Clean)
	duo12 = append(duo12, Duo(ig2, ig1, p.Tau, p.Causal, p.Clean)...)
	duo13 = append(duo13, Duo(ig3, ig1, p.Tau, p.Causal, p.Clean)...)
	duo23 = append(duo23, Duo(ig3, ig2, p.Tau, p.Causal, p.Clean)...)

	trio1 := Duo(duo12, duo13, p.Tau, p.Causal, p.Clean)
	trio2 := Duo(duo12, duo23, p.Tau, p.Causal, p.Clean)
	trio3 := Duo(duo23, duo13, p.Tau, p.Causal, p.Clean)
	trio1 = append(trio1, Duo(duo13, duo12, p.Tau, p.Causal, p.Clean)...)
	trio2 = append(trio2, Duo(duo23, duo12, p.Tau, p.Causal, p.Clean)...)
	trio3 = append(trio3, Duo(duo13, duo23, p.Tau, p.Causal, p.Clean)...)

	// halve to undo the symmetrization
	nb1 := float64(len(trio1)) / 2
	nb2 := float64(len(trio2)) / 2
	nb3 := float64(len(trio3)) / 2

	if p.Fraction {
		if n1 > 0 {
			nb1 /= float64(n1)
		}
		if n2 > 0 {
			nb2 /= float64(n2)
		}
		if n3 > 0 {
			nb3 /= float64(n3)
		}
	}

	result := nb1 + nb2 + nb3
	if p.Fraction {
		result /= 3
	}
	return result
}

// prepare optionally deduplicates the three input sets and reports their
// sizes, which fraction mode uses as normalization divisors.
func prepare(ts1, ts2, ts3 []int, p Params) (ig1, ig2, ig3 []int, n1, n2, n3 int) {
	ig1, ig2, ig3 = ts1, ts2, ts3
	if p.Clean {
		ig1 = events.Dedupe(ig1, p.Tau)
		ig2 = events.Dedupe(ig2, p.Tau)
		ig3 = events.Dedupe(ig3, p.Tau)
	}
	return ig1, ig2, ig3, len(ig1), len(ig2), len(ig3)
}
