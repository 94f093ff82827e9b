// Package service contains the dashboard session workflows. A session is
// one user's filter state, slice board and badge counts; the service owns
// the registry and runs every mutation as state change first, refresh
// second, snapshot last
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"themewatch/internal/core/bucket"
	"themewatch/internal/core/facet"
	"themewatch/internal/modkit/scope"
	perr "themewatch/internal/platform/errors"
	ptime "themewatch/internal/platform/time"
	"themewatch/internal/services/dashboard/counts"
	"themewatch/internal/services/dashboard/domain"
	"themewatch/internal/services/dashboard/drill"
	"themewatch/internal/services/dashboard/refresh"
	"themewatch/internal/services/dashboard/repo"
	"themewatch/internal/services/dashboard/state"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// session bundles everything owned by one dashboard user
type session struct {
	store  *state.Store
	agg    *counts.Aggregator
	orch   *refresh.Orchestrator
	bridge *drill.Bridge
}

// Svc implements the dashboard service
type Svc struct {
	gw repo.Gateway

	mu       sync.Mutex
	sessions map[string]*session
}

// New constructs a dashboard service over the analytics gateway
func New(gw repo.Gateway) *Svc {
	if gw == nil {
		panic("dashboard.Service requires a non nil Gateway")
	}
	return &Svc{gw: gw, sessions: make(map[string]*session)}
}

// Begin opens a session, runs the initial full refresh and returns the new
// session id with the first snapshot
func (s *Svc) Begin(ctx context.Context, themeID string) (string, domain.Snapshot, error) {
	if themeID == "" {
		return "", domain.Snapshot{}, perr.InvalidArgf("theme id required")
	}
	sess := newSession(s.gw)
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	sess.orch.RefreshAll(tag(ctx, id), themeID, sess.store.Snapshot())
	return id, snapshotOf(sess), nil
}

// Snapshot returns the current session view. The theme is re-asserted so a
// stale board from a previous theme is reset rather than served
func (s *Svc) Snapshot(ctx context.Context, sessionID, themeID string) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	sess.orch.Board().EnsureTheme(themeID)
	return snapshotOf(sess), nil
}

// ApplyMaterialFilter replaces the material facets wholesale and refreshes
// the full board
func (s *Svc) ApplyMaterialFilter(ctx context.Context, sessionID, themeID string, in domain.MaterialFilterInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.SetSentiment(tones(in.Sentiment))
	sess.store.SetMaterialTypes(materialKinds(in.MaterialTypes))
	sess.store.SetLanguages(canonicalLangs(in.Languages))
	sess.store.SetSourceTypes(sourceKinds(in.SourceTypes))
	sess.store.SetSources(in.Sources)
	sess.store.SetTags(in.Tags)
	sess.store.SetDescription(in.Description)

	sess.orch.RefreshAll(ctx, themeID, sess.store.Snapshot())
	return snapshotOf(sess), nil
}

// ApplyAuthorFilter replaces the author facets wholesale and refreshes the
// full board. Subscriber bounds follow the forgiving contract: missing or
// all-zero bounds clear the constraint
func (s *Svc) ApplyAuthorFilter(ctx context.Context, sessionID, themeID string, in domain.AuthorFilterInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.SetAuthorTypes(authorKinds(in.AuthorTypes))
	sess.store.SetGenders(genderKinds(in.Genders))
	sess.store.SetAgeRanges(in.AgeRanges)
	sess.store.SetSubscriberRange(subscriberRange(in.SubscriberMin, in.SubscriberMax))

	sess.orch.RefreshAll(ctx, themeID, sess.store.Snapshot())
	return snapshotOf(sess), nil
}

// SetTimeRange replaces the analysed window and refreshes the full board.
// Bounds are validated RFC 3339 upstream; absent bounds mean today
func (s *Svc) SetTimeRange(ctx context.Context, sessionID, themeID string, in domain.TimeRangeInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	start, err := parseBound(in.Start)
	if err != nil {
		return domain.Snapshot{}, err
	}
	end, err := parseBound(in.End)
	if err != nil {
		return domain.Snapshot{}, err
	}
	sess.store.SetTimeRange(start, end)

	sess.orch.RefreshAll(ctx, themeID, sess.store.Snapshot())
	return snapshotOf(sess), nil
}

// SetChartPeriod selects a display granularity and re-fetches only the time
// series slices, categorical breakdowns are unaffected by bucketing
func (s *Svc) SetChartPeriod(ctx context.Context, sessionID, themeID string, in domain.ChartPeriodInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.SetChartPeriod(facet.Granularity(in.Period))

	sess.orch.Refresh(ctx, themeID, sess.store.Snapshot(), refresh.SeriesScope...)
	return snapshotOf(sess), nil
}

// SetViewMode switches the material list view and re-fetches the list and
// its badge counts
func (s *Svc) SetViewMode(ctx context.Context, sessionID, themeID string, in domain.ViewModeInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.SetMode(domain.ViewMode(in.Mode))

	sess.orch.Refresh(ctx, themeID, sess.store.Snapshot(), refresh.ModeScope...)
	return snapshotOf(sess), nil
}

// SetPage changes the materials pagination and re-fetches only the list
func (s *Svc) SetPage(ctx context.Context, sessionID, themeID string, in domain.PageInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.SetPage(in.Page, in.PageSize)

	sess.orch.Refresh(ctx, themeID, sess.store.Snapshot(), refresh.PageScope...)
	return snapshotOf(sess), nil
}

// DrillDown applies a chart point click as a filter. Labels that translate
// to nothing are a silent no-op returning the unchanged snapshot
func (s *Svc) DrillDown(ctx context.Context, sessionID, themeID string, in domain.DrillInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.bridge.Apply(ctx, themeID, domain.SliceKey(in.Chart), facet.Name(in.Facet), in.Label)
	return snapshotOf(sess), nil
}

// RemoveFilter drops one chip and refreshes the full board
func (s *Svc) RemoveFilter(ctx context.Context, sessionID, themeID string, in domain.RemoveFilterInput) (domain.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	ctx = tag(ctx, sessionID)
	sess.store.RemoveFilter(facet.Name(in.Facet), in.Value)

	sess.orch.RefreshAll(ctx, themeID, sess.store.Snapshot())
	return snapshotOf(sess), nil
}

func newSession(gw repo.Gateway) *session {
	st := state.New()
	agg := counts.New()
	orch := refresh.New(gw, refresh.NewBoard(), agg)
	return &session{
		store:  st,
		agg:    agg,
		orch:   orch,
		bridge: drill.New(st, orch),
	}
}

// tag annotates ctx so refresh logging can attribute fetches to a session
func tag(ctx context.Context, sessionID string) context.Context {
	return scope.With(ctx, map[string]string{"session": sessionID})
}

func (s *Svc) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, perr.NotFoundf("unknown session %q", sessionID)
}

// snapshotOf assembles the full session view, deriving the axis layout from
// the current range and chart period
func snapshotOf(sess *session) domain.Snapshot {
	fs := sess.store.Snapshot()
	start := bucket.UTCDayStart(fs.Time.Start, time.Time{})

	axis := domain.AxisConfig{
		Granularities:   bucket.Classify(fs.Time.RangeDays),
		Period:          fs.ChartPeriod,
		PointIntervalMs: bucket.PointInterval(fs.ChartPeriod),
		PointStartMs:    start,
		AxisMinMs:       start,
	}
	if max, ok := bucket.AxisMax(fs.ChartPeriod, fs.Time.End); ok {
		axis.AxisMaxMs = &max
	}

	return domain.Snapshot{
		Filters: fs,
		Chips:   sess.store.Chips(),
		Counts:  sess.agg.Snapshot(),
		Slices:  sess.orch.Board().View(),
		Axis:    axis,
	}
}

// Input coercion helpers. Inputs are validated upstream, unknown values are
// dropped rather than erroring so a newer UI vocabulary degrades gracefully

func tones(in []string) []facet.Tone {
	out := make([]facet.Tone, 0, len(in))
	for _, v := range in {
		out = append(out, facet.Tone(v))
	}
	return out
}

func materialKinds(in []string) []facet.MaterialKind {
	out := make([]facet.MaterialKind, 0, len(in))
	for _, v := range in {
		out = append(out, facet.MaterialKind(v))
	}
	return out
}

func sourceKinds(in []string) []facet.SourceKind {
	out := make([]facet.SourceKind, 0, len(in))
	for _, v := range in {
		out = append(out, facet.SourceKind(v))
	}
	return out
}

func authorKinds(in []string) []facet.AuthorKind {
	out := make([]facet.AuthorKind, 0, len(in))
	for _, v := range in {
		out = append(out, facet.AuthorKind(v))
	}
	return out
}

func genderKinds(in []string) []facet.GenderKind {
	out := make([]facet.GenderKind, 0, len(in))
	for _, v := range in {
		out = append(out, facet.GenderKind(v))
	}
	return out
}

// canonicalLangs maps language inputs through the canonicalizer, dropping
// what it cannot place
func canonicalLangs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if code, ok := facet.NormalizeLang(v); ok {
			out = append(out, code)
		}
	}
	return out
}

func subscriberRange(min, max *int64) *domain.SubscriberRange {
	if min == nil && max == nil {
		return nil
	}
	r := domain.SubscriberRange{}
	if min != nil {
		r.Min = *min
	}
	if max != nil {
		r.Max = *max
	}
	return &r
}

func parseBound(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, perr.InvalidArgf("bad time bound %q", v)
	}
	return ptime.Ptr(t), nil
}
