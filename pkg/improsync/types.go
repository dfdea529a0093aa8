// Package improsync analyzes interruptive generations (IGs) in the control
// signals of three-performer free improvisation sessions. It detects event
// timestamps in the raw signals and quantifies synchronization between the
// performers as duo and trio match counts, optionally causal, optionally
// normalized to fractions.
package improsync

import (
	"fmt"

	"github.com/google/uuid"
)

// Recording holds one performer's raw multichannel time series. Samples are
// time-major: Series[t][c] is channel c at step t, with a uniform 1-unit
// sampling period.
type Recording struct {
	Performer int         // performer id within the trio, conventionally 1..3
	Series    [][]float64 // raw samples, one row per time step
	Channel   int         // index of the control-signal channel (pedal or slider)
}

// Signal extracts the control-signal channel of the recording as a flat
// series ready for event detection. Every row must be wide enough for the
// configured channel.
func (r Recording) Signal() ([]float64, error) {
	sig := make([]float64, len(r.Series))
	for t, row := range r.Series {
		if r.Channel < 0 || r.Channel >= len(row) {
			return nil, fmt.Errorf("performer %d: channel %d out of range at step %d (%d channels)",
				r.Performer, r.Channel, t, len(row))
		}
		sig[t] = row[r.Channel]
	}
	return sig, nil
}

// Trio is one improvisation session's three performers. The recordings are
// independent; nothing is shared or mutated between them.
type Trio [3]Recording

// Session ties a trio of recordings to a unique identifier so that results
// from different sessions can be told apart in logs and downstream analyses.
type Session struct {
	ID         uuid.UUID
	Recordings Trio
}

// NewSession wraps the recordings of one session with a fresh identifier.
func NewSession(recs Trio) Session {
	return Session{ID: uuid.New(), Recordings: recs}
}

// Report gathers the synchronization measures of one session.
type Report struct {
	SessionID   uuid.UUID
	EventCounts [3]int  // detected IGs per performer, after detection, before cleaning
	DuoCount    float64 // pairwise synchronization measure
	TrioCount   float64 // three-way synchronization measure
}
