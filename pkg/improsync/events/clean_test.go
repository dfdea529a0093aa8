package events

import "testing"

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		ts       []int
		tau      int
		expected []int
	}{
		{
			name:     "batch removal then stable",
			ts:       []int{10, 11, 12, 20},
			tau:      1,
			expected: []int{10, 20},
		},
		{
			name:     "already clean",
			ts:       []int{3, 8, 20},
			tau:      2,
			expected: []int{3, 8, 20},
		},
		{
			name:     "exact duplicates with zero tau",
			ts:       []int{3, 3, 3, 7, 7, 9},
			tau:      0,
			expected: []int{3, 7, 9},
		},
		{
			name:     "zero tau keeps close neighbours",
			ts:       []int{3, 4, 5},
			tau:      0,
			expected: []int{3, 4, 5},
		},
		{
			name:     "cascade collapses a chain to its head",
			ts:       []int{0, 2, 4, 6, 8},
			tau:      2,
			expected: []int{0},
		},
		{
			name:     "removal re-evaluated across passes",
			ts:       []int{0, 3, 4, 8},
			tau:      1,
			expected: []int{0, 3, 8},
		},
		{
			name:     "single element",
			ts:       []int{5},
			tau:      3,
			expected: []int{5},
		},
		{
			name:     "empty",
			ts:       nil,
			tau:      3,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.ts, tt.tau)
			if !equalInts(got, tt.expected) {
				t.Errorf("Dedupe(%v, %d) = %v, expected %v", tt.ts, tt.tau, got, tt.expected)
			}
		})
	}
}

func TestDedupeIdempotent(t *testing.T) {
	inputs := [][]int{
		{10, 11, 12, 20},
		{0, 2, 4, 6, 8},
		{1, 1, 2, 9, 9, 14},
		{5, 6, 7, 30, 31, 60},
	}
	for _, ts := range inputs {
		for tau := 0; tau <= 3; tau++ {
			once := Dedupe(ts, tau)
			twice := Dedupe(once, tau)
			if !equalInts(once, twice) {
				t.Errorf("Dedupe not idempotent for %v tau=%d: %v then %v", ts, tau, once, twice)
			}
		}
	}
}

func TestDedupeGapPostcondition(t *testing.T) {
	inputs := [][]int{
		{10, 11, 12, 20},
		{0, 1, 2, 3, 10, 11, 20, 22, 24, 40},
		{7, 7, 7, 7},
	}
	for _, ts := range inputs {
		for tau := 0; tau <= 4; tau++ {
			got := Dedupe(ts, tau)
			for i := 1; i < len(got); i++ {
				if got[i]-got[i-1] <= tau {
					t.Errorf("Dedupe(%v, %d) = %v: gap at %d not above tau", ts, tau, got, i)
				}
			}
		}
	}
}

func TestDedupeDoesNotMutateInput(t *testing.T) {
	ts := []int{10, 11, 12, 20}
	Dedupe(ts, 1)
	if !equalInts(ts, []int{10, 11, 12, 20}) {
		t.Errorf("input mutated: %v", ts)
	}
}
