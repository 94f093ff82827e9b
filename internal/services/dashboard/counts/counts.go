// Package counts keeps the facet badge counts of one session. The snapshot
// is always replaced wholesale from a successful count fetch, never merged
// incrementally, so it stays consistent with the applied filter state. A
// failed fetch leaves the previous snapshot in place: badge counts degrade,
// charts and tables are unaffected
package counts

import (
	"sync"

	"themewatch/internal/core/facet"
	"themewatch/internal/services/dashboard/domain"
)

// Aggregator holds the current FilterCounts snapshot
type Aggregator struct {
	mu   sync.Mutex
	snap domain.FilterCounts
}

// New returns an empty Aggregator
func New() *Aggregator {
	return &Aggregator{snap: domain.FilterCounts{}}
}

// Replace swaps in a whole new snapshot
func (a *Aggregator) Replace(snap domain.FilterCounts) {
	if snap == nil {
		snap = domain.FilterCounts{}
	}
	a.mu.Lock()
	a.snap = snap
	a.mu.Unlock()
}

// Snapshot returns a copy of the current counts
func (a *Aggregator) Snapshot() domain.FilterCounts {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(domain.FilterCounts, len(a.snap))
	for f, vals := range a.snap {
		m := make(map[string]int64, len(vals))
		for k, v := range vals {
			m[k] = v
		}
		out[f] = m
	}
	return out
}

// Count returns the badge count for one facet value, zero when absent
func (a *Aggregator) Count(n facet.Name, value string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if vals, ok := a.snap[n]; ok {
		return vals[value]
	}
	return 0
}
