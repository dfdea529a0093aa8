// Package events detects interruptive generations (IGs) in a performer's
// control signal and prepares the resulting timestamp sets for matching.
//
// An IG is a sudden step in the signal (pedal or slider position). The
// detector works on first differences of the raw samples, assuming a uniform
// 1-unit sampling period, and reports the index of the sample right after
// each large enough step.
package events

import "errors"

// ErrNoEvents is returned when an operation needs at least one detected
// event and the detector found none.
var ErrNoEvents = errors.New("no events detected in signal")

// Detect returns the timestamps at which IGs occur in the signal x.
//
// The threshold is the minimal step in the signal that counts as an IG.
// A positive threshold selects upward steps (difference >= threshold); a
// threshold <= 0 selects downward steps (difference <= threshold), so a
// threshold of exactly 0 follows the downward branch. A signal shorter
// than two samples has no differences and yields no events.
//
// Timestamps are indices into x, strictly increasing, each in [1, len(x)-1].
func Detect(x []float64, threshold float64) []int {
	var ts []int
	for i := 0; i+1 < len(x); i++ {
		d := x[i+1] - x[i]
		if threshold > 0 {
			if d >= threshold {
				ts = append(ts, i+1)
			}
		} else if d <= threshold {
			ts = append(ts, i+1)
		}
	}
	return ts
}

// Intervals returns the time gaps between consecutive IGs detected in x.
//
// If firstAsInterval is true, the first timestamp itself is prepended as the
// time elapsed between the start of the recording and the first IG, making
// the result as long as the detected timestamp set; otherwise the result has
// one element less. Callers asking for the first interval on a signal with
// no detectable events get ErrNoEvents.
func Intervals(x []float64, threshold float64, firstAsInterval bool) ([]int, error) {
	ig := Detect(x, threshold)
	if firstAsInterval && len(ig) == 0 {
		return nil, ErrNoEvents
	}
	var intervals []int
	if firstAsInterval {
		intervals = append(intervals, ig[0])
	}
	for i := 1; i < len(ig); i++ {
		intervals = append(intervals, ig[i]-ig[i-1])
	}
	return intervals, nil
}
