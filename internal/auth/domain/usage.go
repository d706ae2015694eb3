package domain

import "errors"

// Counter names a per-user usage counter. The wire names follow the public
// API; the store maps them onto columns.
type Counter string

const (
	CounterFilesUploaded     Counter = "filesUploaded"
	CounterBatchAnalysis     Counter = "batchAnalysisCount"
	CounterCompareResumes    Counter = "compareResumesCount"
	CounterSelectedCandidate Counter = "selectedCandidateCount"
)

// SelectedCandidateLimit is the hard ceiling on selected candidates per user.
const SelectedCandidateLimit int64 = 10

// ErrUnknownCounter reports a counter name outside the known set.
var ErrUnknownCounter = errors.New("domain: unknown counter")

// Counters lists every known counter in a stable order.
func Counters() []Counter {
	return []Counter{
		CounterFilesUploaded,
		CounterBatchAnalysis,
		CounterCompareResumes,
		CounterSelectedCandidate,
	}
}

// ParseCounter validates a wire-level counter name.
func ParseCounter(name string) (Counter, error) {
	c := Counter(name)
	switch c {
	case CounterFilesUploaded, CounterBatchAnalysis, CounterCompareResumes, CounterSelectedCandidate:
		return c, nil
	}
	return "", ErrUnknownCounter
}

// Limit returns the ceiling for a counter, or 0 when it is unlimited.
func (c Counter) Limit() int64 {
	if c == CounterSelectedCandidate {
		return SelectedCandidateLimit
	}
	return 0
}

// UsageCounters holds the per-user feature counters. All values are
// non-negative and monotonically non-decreasing.
type UsageCounters struct {
	FilesUploaded     int64
	BatchAnalysis     int64
	CompareResumes    int64
	SelectedCandidate int64
}

// Get returns the current value of the named counter.
func (u UsageCounters) Get(c Counter) int64 {
	switch c {
	case CounterFilesUploaded:
		return u.FilesUploaded
	case CounterBatchAnalysis:
		return u.BatchAnalysis
	case CounterCompareResumes:
		return u.CompareResumes
	case CounterSelectedCandidate:
		return u.SelectedCandidate
	}
	return 0
}

// Usage is the read-only snapshot handed to API consumers: current values,
// configured ceilings, and remaining headroom for the limited counters.
type Usage struct {
	Counters  map[string]int64
	Limits    map[string]int64
	Remaining map[string]int64
}

// Snapshot builds a Usage view of the counters.
func (u UsageCounters) Snapshot() Usage {
	counters := make(map[string]int64, 4)
	limits := make(map[string]int64, 1)
	remaining := make(map[string]int64, 1)

	for _, c := range Counters() {
		counters[string(c)] = u.Get(c)
		if limit := c.Limit(); limit > 0 {
			limits[string(c)] = limit
			remaining[string(c)] = max(0, limit-u.Get(c))
		}
	}

	return Usage{Counters: counters, Limits: limits, Remaining: remaining}
}
