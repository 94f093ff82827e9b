package refresh

import (
	"context"
	"sync"
	"time"

	"themewatch/internal/modkit/scope"
	perr "themewatch/internal/platform/errors"
	"themewatch/internal/platform/logger"
	"themewatch/internal/platform/metrics"
	"themewatch/internal/services/dashboard/counts"
	"themewatch/internal/services/dashboard/domain"
	"themewatch/internal/services/dashboard/repo"
)

// Orchestrator fans analytic fetches out to the upstream gateway and lands
// the responses on the board. Fetches are independent: no retry, no
// cancellation of siblings, failures degrade exactly one slice
type Orchestrator struct {
	gw     repo.Gateway
	board  *Board
	counts *counts.Aggregator
}

// New wires an Orchestrator. counts may not be nil, the filter count slice
// feeds it on every successful fetch
func New(gw repo.Gateway, board *Board, agg *counts.Aggregator) *Orchestrator {
	if gw == nil {
		panic("refresh.Orchestrator requires a non nil Gateway")
	}
	if board == nil {
		panic("refresh.Orchestrator requires a non nil Board")
	}
	if agg == nil {
		panic("refresh.Orchestrator requires a non nil counts.Aggregator")
	}
	return &Orchestrator{gw: gw, board: board, counts: agg}
}

// Board exposes the slice board for reads
func (o *Orchestrator) Board() *Board { return o.board }

// RefreshAll re-issues the full slice set
func (o *Orchestrator) RefreshAll(ctx context.Context, themeID string, fs domain.FilterState) {
	o.Refresh(ctx, themeID, fs, domain.AllSlices...)
}

// Refresh issues the given slices concurrently against a single filter
// state snapshot and blocks until every fetch has landed. Each fetch reads
// the snapshot taken at issue time, responses apply in arrival order
func (o *Orchestrator) Refresh(ctx context.Context, themeID string, fs domain.FilterState, keys ...domain.SliceKey) {
	o.board.EnsureTheme(themeID)

	var wg sync.WaitGroup
	for _, k := range keys {
		wg.Add(1)
		o.board.begin(k)
		go func(k domain.SliceKey) {
			defer wg.Done()
			o.fetchOne(ctx, k, themeID, fs)
		}(k)
	}
	wg.Wait()
}

func (o *Orchestrator) fetchOne(ctx context.Context, k domain.SliceKey, themeID string, fs domain.FilterState) {
	start := time.Now()
	data, err := o.fetch(ctx, k, themeID, fs)
	metrics.ObserveRefresh(string(k), time.Since(start), err)

	if err != nil {
		// the slice keeps its last good data, the UI shows stale over blank
		o.board.fail(k)
		ev := logger.C(ctx).Warn().Err(err).Str("slice", string(k)).Str("theme", themeID)
		if sid, ok := scope.Get(ctx, "session"); ok {
			ev = ev.Str("session", sid)
		}
		ev.Msg("slice refresh failed")
		return
	}
	o.board.apply(k, data)
	if k == domain.SliceFilterCount {
		if snap, ok := data.(domain.FilterCounts); ok {
			o.counts.Replace(snap)
		}
	}
}

// fetch maps a slice key to its gateway call
func (o *Orchestrator) fetch(ctx context.Context, k domain.SliceKey, themeID string, fs domain.FilterState) (any, error) {
	switch k {
	case domain.SliceMaterials:
		return o.gw.Materials(ctx, themeID, fs)
	case domain.SliceFilterCount:
		return o.gw.FilterCounts(ctx, themeID, fs)
	case domain.SliceMainSeries:
		return o.gw.MainSeries(ctx, themeID, fs)
	case domain.SliceToneByReview:
		return o.gw.ToneByReview(ctx, themeID, fs)
	case domain.SliceLanguageByReview:
		return o.gw.LanguageByReview(ctx, themeID, fs)
	case domain.SliceSourceMessageMix:
		return o.gw.SourceMessageMix(ctx, themeID, fs)
	case domain.SliceSourceDynamic:
		return o.gw.SourceDynamic(ctx, themeID, fs)
	case domain.SliceSourceMessageType:
		return o.gw.SourceMessageType(ctx, themeID, fs)
	case domain.SliceSourceTone:
		return o.gw.SourceTone(ctx, themeID, fs)
	case domain.SliceSourceTable:
		return o.gw.SourceTable(ctx, themeID, fs)
	case domain.SliceAuthorDynamic:
		return o.gw.AuthorDynamic(ctx, themeID, fs)
	case domain.SliceAuthorTable:
		return o.gw.AuthorTable(ctx, themeID, fs)
	case domain.SliceTagDynamic:
		return o.gw.TagDynamic(ctx, themeID, fs)
	case domain.SliceTagMessageMix:
		return o.gw.TagMessageMix(ctx, themeID, fs)
	case domain.SliceTagTone:
		return o.gw.TagTone(ctx, themeID, fs)
	case domain.SliceTagTable:
		return o.gw.TagTable(ctx, themeID, fs)
	default:
		return nil, perr.InvalidArgf("unknown slice %q", string(k))
	}
}
