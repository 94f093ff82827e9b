// Package refresh owns the query slice board and the fan-out that keeps it
// fresh. Every analytic view is one independently fetched slice: one failing
// never cancels the others, and a failed slice keeps its last good data
package refresh

import (
	"sync"

	"themewatch/internal/services/dashboard/domain"
)

// slot is the internal state of one slice. inflight counts concurrent
// fetches so pending stays true until the last one lands
type slot struct {
	data     any
	inflight int
	themeID  string
}

// Board holds every slice of one session
type Board struct {
	mu      sync.Mutex
	slots   map[domain.SliceKey]*slot
	themeID string
}

// NewBoard returns a Board with every slice empty
func NewBoard() *Board {
	b := &Board{slots: make(map[domain.SliceKey]*slot, len(domain.AllSlices))}
	for _, k := range domain.AllSlices {
		b.slots[k] = &slot{}
	}
	return b
}

// EnsureTheme resets every slice when the owning theme changes
func (b *Board) EnsureTheme(themeID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.themeID == themeID {
		return
	}
	b.themeID = themeID
	for _, s := range b.slots {
		s.data = nil
		s.inflight = 0
		s.themeID = themeID
	}
}

// begin marks one fetch in flight
func (b *Board) begin(k domain.SliceKey) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[k].inflight++
}

// apply replaces the slice data wholesale. Responses land in arrival order
// and the last arrival wins regardless of issue order
func (b *Board) apply(k domain.SliceKey, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.slots[k]
	s.data = data
	if s.inflight > 0 {
		s.inflight--
	}
}

// fail clears the pending mark and keeps the last good data untouched
func (b *Board) fail(k domain.SliceKey) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.slots[k]
	if s.inflight > 0 {
		s.inflight--
	}
}

// Slice returns the externally visible state of one slice
func (b *Board) Slice(k domain.SliceKey) (domain.SliceState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.slots[k]
	if !ok {
		return domain.SliceState{}, false
	}
	return domain.SliceState{Data: s.data, Pending: s.inflight > 0, ThemeID: s.themeID}, true
}

// View returns the whole board for the snapshot endpoint
func (b *Board) View() map[domain.SliceKey]domain.SliceState {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[domain.SliceKey]domain.SliceState, len(b.slots))
	for k, s := range b.slots {
		out[k] = domain.SliceState{Data: s.data, Pending: s.inflight > 0, ThemeID: s.themeID}
	}
	return out
}
