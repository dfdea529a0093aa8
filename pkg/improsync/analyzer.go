package improsync

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/freeimpro/improsync/pkg/improsync/events"
	"github.com/freeimpro/improsync/pkg/improsync/match"
)

// Analyzer applies the IG synchronization measures to trio recordings. It is
// stateless apart from its configuration; methods are safe for concurrent
// use on independent inputs.
type Analyzer struct {
	cfg *Config
	log *logrus.Logger
}

// New creates an analyzer with the default parameters (threshold 4, tau 2,
// cleaning on) adjusted by the given options.
func New(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig creates an analyzer from an explicit configuration, e.g. one
// decoded by LoadConfig.
func NewFromConfig(cfg *Config) *Analyzer {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Analyzer{cfg: cfg, log: log}
}

// DetectEvents runs the step detector on one performer's control channel and
// returns the IG timestamps. A recording in which nothing crosses the
// threshold is degenerate for the trio measures and is reported at Warn
// level, but is not an error: downstream counts simply skip it.
func (a *Analyzer) DetectEvents(rec Recording) ([]int, error) {
	sig, err := rec.Signal()
	if err != nil {
		return nil, err
	}
	ts := events.Detect(sig, a.cfg.Threshold)
	if len(ts) == 0 {
		a.log.WithField("performer", rec.Performer).Warn("no events detected")
	}
	return ts, nil
}

// DuoCount detects IGs on the three recordings' control channels and returns
// the trio's pairwise synchronization count (or fraction, in fraction mode).
func (a *Analyzer) DuoCount(recs Trio) (float64, error) {
	sets, err := a.detectTrio(recs)
	if err != nil {
		return 0, err
	}
	return match.CountDuos(sets[0], sets[1], sets[2], a.cfg.params()), nil
}

// TrioCount detects IGs on the three recordings' control channels and
// returns the trio's three-way synchronization count (or fraction).
func (a *Analyzer) TrioCount(recs Trio) (float64, error) {
	sets, err := a.detectTrio(recs)
	if err != nil {
		return 0, err
	}
	return match.CountTrios(sets[0], sets[1], sets[2], a.cfg.params()), nil
}

// DuoCountFromEvents computes the pairwise synchronization measure from
// already extracted timestamp sets, bypassing detection.
func (a *Analyzer) DuoCountFromEvents(ts1, ts2, ts3 []int) float64 {
	return match.CountDuos(ts1, ts2, ts3, a.cfg.params())
}

// TrioCountFromEvents computes the three-way synchronization measure from
// already extracted timestamp sets, bypassing detection.
func (a *Analyzer) TrioCountFromEvents(ts1, ts2, ts3 []int) float64 {
	return match.CountTrios(ts1, ts2, ts3, a.cfg.params())
}

// AnalyzeSession runs the full pipeline on a session: detection on each
// performer, then both synchronization measures.
func (a *Analyzer) AnalyzeSession(s Session) (*Report, error) {
	sets, err := a.detectTrio(s.Recordings)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}
	p := a.cfg.params()
	rep := &Report{SessionID: s.ID}
	for k := range sets {
		rep.EventCounts[k] = len(sets[k])
	}
	rep.DuoCount = match.CountDuos(sets[0], sets[1], sets[2], p)
	rep.TrioCount = match.CountTrios(sets[0], sets[1], sets[2], p)
	a.log.WithFields(logrus.Fields{
		"session": s.ID,
		"duo":     rep.DuoCount,
		"trio":    rep.TrioCount,
	}).Info("session analyzed")
	return rep, nil
}

func (a *Analyzer) detectTrio(recs Trio) ([3][]int, error) {
	var sets [3][]int
	for k := range recs {
		ts, err := a.DetectEvents(recs[k])
		if err != nil {
			return sets, err
		}
		a.log.WithFields(logrus.Fields{
			"performer": recs[k].Performer,
			"events":    len(ts),
		}).Debug("detected events")
		sets[k] = ts
	}
	return sets, nil
}
