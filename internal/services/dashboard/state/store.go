// Package state holds the canonical facet selections of one dashboard
// session. The store is the single source of truth for filters; views read
// it and mutate it only through the named setters. Setters never perform
// network work, refresh fan-out is the caller's explicit next step
package state

import (
	"fmt"
	"sync"
	"time"

	"themewatch/internal/core/bucket"
	"themewatch/internal/core/facet"
	"themewatch/internal/services/dashboard/domain"
)

// DefaultPageSize is applied until a session changes it
const DefaultPageSize = 20

// Store is one session's filter state plus its derived chip list
type Store struct {
	mu    sync.Mutex
	cur   domain.FilterState
	chips []domain.FilterChip

	// now is a seam for tests, zero bounds resolve through it
	now func() time.Time
}

// New returns a Store with the default view and today's range
func New() *Store {
	s := &Store{now: time.Now}
	s.cur = domain.FilterState{
		Mode:     domain.ViewAll,
		Page:     1,
		PageSize: DefaultPageSize,
	}
	s.recomputeRange()
	s.rebuildChips()
	return s
}

// WithClock overrides the time source, for tests
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	s.recomputeRange()
	return s
}

// Snapshot returns a deep copy of the current filter state
func (s *Store) Snapshot() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.cur)
}

// Chips returns the flattened active filter list, rebuilt on every mutation
func (s *Store) Chips() []domain.FilterChip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FilterChip, len(s.chips))
	copy(out, s.chips)
	return out
}

// Facet setters. Each replaces its facet wholesale with a deduplicated copy
// and rebuilds the chip list before returning

// SetSentiment replaces the sentiment facet
func (s *Store) SetSentiment(v []facet.Tone) {
	s.mutate(func() { s.cur.Material.Sentiment = uniq(v) })
}

// SetMaterialTypes replaces the material type facet
func (s *Store) SetMaterialTypes(v []facet.MaterialKind) {
	s.mutate(func() { s.cur.Material.MaterialTypes = uniq(v) })
}

// SetLanguages replaces the language facet
func (s *Store) SetLanguages(v []string) {
	s.mutate(func() { s.cur.Material.Languages = uniq(v) })
}

// SetSourceTypes replaces the source type facet
func (s *Store) SetSourceTypes(v []facet.SourceKind) {
	s.mutate(func() { s.cur.Material.SourceTypes = uniq(v) })
}

// SetSources replaces the concrete source facet
func (s *Store) SetSources(v []string) {
	s.mutate(func() { s.cur.Material.Sources = uniq(v) })
}

// SetTags replaces the tag facet
func (s *Store) SetTags(v []string) {
	s.mutate(func() { s.cur.Material.Tags = uniq(v) })
}

// SetDescription replaces the free text constraint
func (s *Store) SetDescription(v string) {
	s.mutate(func() { s.cur.Material.Description = v })
}

// SetAuthorTypes replaces the author type facet
func (s *Store) SetAuthorTypes(v []facet.AuthorKind) {
	s.mutate(func() { s.cur.Author.AuthorTypes = uniq(v) })
}

// SetGenders replaces the gender facet
func (s *Store) SetGenders(v []facet.GenderKind) {
	s.mutate(func() { s.cur.Author.Genders = uniq(v) })
}

// SetAgeRanges replaces the age band facet
func (s *Store) SetAgeRanges(v []domain.AgeRange) {
	s.mutate(func() { s.cur.Author.AgeRanges = uniq(v) })
}

// SetSubscriberRange bounds the audience size. A nil or empty range clears
// the constraint, malformed input is "no constraint" by contract
func (s *Store) SetSubscriberRange(r *domain.SubscriberRange) {
	s.mutate(func() {
		if r == nil || (r.Min == 0 && r.Max == 0) {
			s.cur.Author.Subscribers = nil
			return
		}
		c := *r
		s.cur.Author.Subscribers = &c
	})
}

// SetMode switches the material list view
func (s *Store) SetMode(m domain.ViewMode) {
	s.mutate(func() {
		s.cur.Mode = m
		s.cur.Page = 1
	})
}

// SetPage changes the materials list pagination
func (s *Store) SetPage(page, pageSize int) {
	s.mutate(func() {
		if page >= 1 {
			s.cur.Page = page
		}
		if pageSize >= 1 {
			s.cur.PageSize = pageSize
		}
	})
}

// SetTimeRange replaces the analysed window. RangeDays is rederived and a
// chart period that is no longer valid for the new span is corrected, never
// left dangling
func (s *Store) SetTimeRange(start, end *time.Time) {
	s.mutate(func() {
		s.cur.Time.Start = cloneTime(start)
		s.cur.Time.End = cloneTime(end)
		s.recomputeRange()
	})
}

// SetChartPeriod selects a display granularity, coerced into the set valid
// for the current span
func (s *Store) SetChartPeriod(g facet.Granularity) {
	s.mutate(func() {
		s.cur.ChartPeriod = bucket.Coerce(g, s.cur.Time.RangeDays)
	})
}

// RemoveFilter drops one value from the named facet. Unknown facet or
// absent value is a no-op
func (s *Store) RemoveFilter(n facet.Name, value string) {
	s.mutate(func() {
		switch n {
		case facet.Sentiment:
			s.cur.Material.Sentiment = drop(s.cur.Material.Sentiment, facet.Tone(value))
		case facet.MaterialType:
			s.cur.Material.MaterialTypes = drop(s.cur.Material.MaterialTypes, facet.MaterialKind(value))
		case facet.Language:
			s.cur.Material.Languages = drop(s.cur.Material.Languages, value)
		case facet.SourceType:
			s.cur.Material.SourceTypes = drop(s.cur.Material.SourceTypes, facet.SourceKind(value))
		case facet.Sources:
			s.cur.Material.Sources = drop(s.cur.Material.Sources, value)
		case facet.Tags:
			s.cur.Material.Tags = drop(s.cur.Material.Tags, value)
		case facet.Gender:
			s.cur.Author.Genders = drop(s.cur.Author.Genders, facet.GenderKind(value))
		case facet.AuthorType:
			s.cur.Author.AuthorTypes = drop(s.cur.Author.AuthorTypes, facet.AuthorKind(value))
		case facet.Age:
			kept := s.cur.Author.AgeRanges[:0:0]
			for _, a := range s.cur.Author.AgeRanges {
				if ageChip(a) != value {
					kept = append(kept, a)
				}
			}
			s.cur.Author.AgeRanges = kept
		}
	})
}

// mutate runs fn under the lock and rebuilds the derived chip list.
// The chip list is a pure derived view, always rebuilt, never patched
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.rebuildChips()
}

// recomputeRange derives RangeDays from the bounds and corrects the chart
// period. Callers hold the lock
func (s *Store) recomputeRange() {
	today := s.now().UTC()
	start, end := today, today
	if s.cur.Time.Start != nil {
		start = s.cur.Time.Start.UTC()
	}
	if s.cur.Time.End != nil {
		end = s.cur.Time.End.UTC()
	}
	s.cur.Time.RangeDays = end.Sub(start).Hours() / 24
	s.cur.ChartPeriod = bucket.Coerce(s.cur.ChartPeriod, s.cur.Time.RangeDays)
}

// rebuildChips flattens all non empty facet sets in the canonical order.
// Callers hold the lock
func (s *Store) rebuildChips() {
	chips := make([]domain.FilterChip, 0, 16)
	add := func(n facet.Name, vals []string) {
		for _, v := range vals {
			chips = append(chips, domain.FilterChip{Facet: n, Value: v})
		}
	}
	for _, n := range facet.ChipOrder {
		switch n {
		case facet.Sentiment:
			add(n, asStrings(s.cur.Material.Sentiment))
		case facet.MaterialType:
			add(n, asStrings(s.cur.Material.MaterialTypes))
		case facet.Language:
			add(n, s.cur.Material.Languages)
		case facet.SourceType:
			add(n, asStrings(s.cur.Material.SourceTypes))
		case facet.Sources:
			add(n, s.cur.Material.Sources)
		case facet.Tags:
			add(n, s.cur.Material.Tags)
		case facet.Gender:
			add(n, asStrings(s.cur.Author.Genders))
		case facet.AuthorType:
			add(n, asStrings(s.cur.Author.AuthorTypes))
		case facet.Age:
			for _, a := range s.cur.Author.AgeRanges {
				chips = append(chips, domain.FilterChip{Facet: n, Value: ageChip(a)})
			}
		}
	}
	s.chips = chips
}

func ageChip(a domain.AgeRange) string { return fmt.Sprintf("%d-%d", a.From, a.To) }

func asStrings[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}

// uniq keeps the first occurrence of each element
func uniq[T comparable](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func drop[T comparable](in []T, v T) []T {
	out := in[:0:0]
	for _, e := range in {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneState(in domain.FilterState) domain.FilterState {
	out := in
	out.Material.Sentiment = append([]facet.Tone(nil), in.Material.Sentiment...)
	out.Material.MaterialTypes = append([]facet.MaterialKind(nil), in.Material.MaterialTypes...)
	out.Material.Languages = append([]string(nil), in.Material.Languages...)
	out.Material.SourceTypes = append([]facet.SourceKind(nil), in.Material.SourceTypes...)
	out.Material.Sources = append([]string(nil), in.Material.Sources...)
	out.Material.Tags = append([]string(nil), in.Material.Tags...)
	out.Author.AuthorTypes = append([]facet.AuthorKind(nil), in.Author.AuthorTypes...)
	out.Author.Genders = append([]facet.GenderKind(nil), in.Author.Genders...)
	out.Author.AgeRanges = append([]domain.AgeRange(nil), in.Author.AgeRanges...)
	if in.Author.Subscribers != nil {
		c := *in.Author.Subscribers
		out.Author.Subscribers = &c
	}
	out.Time.Start = cloneTime(in.Time.Start)
	out.Time.End = cloneTime(in.Time.End)
	return out
}
