// Package repotest provides a programmable in-memory Gateway for tests
package repotest

import (
	"context"
	"sync"

	"themewatch/internal/services/dashboard/domain"
)

// Gateway answers every slice from a result table and records each call.
// A gate channel set for a slice holds that response until released, which
// lets tests order arrivals deterministically
type Gateway struct {
	mu      sync.Mutex
	calls   []domain.SliceKey
	results map[domain.SliceKey]any
	errs    map[domain.SliceKey]error
	gates   map[domain.SliceKey]chan struct{}
}

// New returns a Gateway that answers every slice empty
func New() *Gateway {
	return &Gateway{
		results: make(map[domain.SliceKey]any),
		errs:    make(map[domain.SliceKey]error),
		gates:   make(map[domain.SliceKey]chan struct{}),
	}
}

// SetResult programs the payload one slice returns
func (g *Gateway) SetResult(k domain.SliceKey, v any) {
	g.mu.Lock()
	g.results[k] = v
	g.mu.Unlock()
}

// SetErr programs one slice to fail
func (g *Gateway) SetErr(k domain.SliceKey, err error) {
	g.mu.Lock()
	g.errs[k] = err
	g.mu.Unlock()
}

// Gate installs a hold on one slice; its responses block until the channel
// is closed. A nil channel removes the hold
func (g *Gateway) Gate(k domain.SliceKey, ch chan struct{}) {
	g.mu.Lock()
	if ch == nil {
		delete(g.gates, k)
	} else {
		g.gates[k] = ch
	}
	g.mu.Unlock()
}

// Calls returns every fetch in issue order
func (g *Gateway) Calls() []domain.SliceKey {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.SliceKey(nil), g.calls...)
}

// Fetched returns per slice fetch counts
func (g *Gateway) Fetched() map[domain.SliceKey]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[domain.SliceKey]int, len(g.calls))
	for _, k := range g.calls {
		out[k]++
	}
	return out
}

// Reset clears the recorded calls, keeping the programmed answers
func (g *Gateway) Reset() {
	g.mu.Lock()
	g.calls = nil
	g.mu.Unlock()
}

func (g *Gateway) answer(k domain.SliceKey) (any, error) {
	g.mu.Lock()
	g.calls = append(g.calls, k)
	gate := g.gates[k]
	res := g.results[k]
	err := g.errs[k]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return res, err
}

func as[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	return v.(T), nil
}

// Materials implements repo.Gateway
func (g *Gateway) Materials(context.Context, string, domain.FilterState) (domain.MaterialsPage, error) {
	return as[domain.MaterialsPage](g.answer(domain.SliceMaterials))
}

// FilterCounts implements repo.Gateway
func (g *Gateway) FilterCounts(context.Context, string, domain.FilterState) (domain.FilterCounts, error) {
	return as[domain.FilterCounts](g.answer(domain.SliceFilterCount))
}

// MainSeries implements repo.Gateway
func (g *Gateway) MainSeries(context.Context, string, domain.FilterState) ([]domain.Series, error) {
	return as[[]domain.Series](g.answer(domain.SliceMainSeries))
}

// ToneByReview implements repo.Gateway
func (g *Gateway) ToneByReview(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceToneByReview))
}

// LanguageByReview implements repo.Gateway
func (g *Gateway) LanguageByReview(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceLanguageByReview))
}

// SourceMessageMix implements repo.Gateway
func (g *Gateway) SourceMessageMix(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceSourceMessageMix))
}

// SourceDynamic implements repo.Gateway
func (g *Gateway) SourceDynamic(context.Context, string, domain.FilterState) ([]domain.Series, error) {
	return as[[]domain.Series](g.answer(domain.SliceSourceDynamic))
}

// SourceMessageType implements repo.Gateway
func (g *Gateway) SourceMessageType(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceSourceMessageType))
}

// SourceTone implements repo.Gateway
func (g *Gateway) SourceTone(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceSourceTone))
}

// SourceTable implements repo.Gateway
func (g *Gateway) SourceTable(context.Context, string, domain.FilterState) (domain.SourceTable, error) {
	return as[domain.SourceTable](g.answer(domain.SliceSourceTable))
}

// AuthorDynamic implements repo.Gateway
func (g *Gateway) AuthorDynamic(context.Context, string, domain.FilterState) ([]domain.Series, error) {
	return as[[]domain.Series](g.answer(domain.SliceAuthorDynamic))
}

// AuthorTable implements repo.Gateway
func (g *Gateway) AuthorTable(context.Context, string, domain.FilterState) (domain.AuthorTable, error) {
	return as[domain.AuthorTable](g.answer(domain.SliceAuthorTable))
}

// TagDynamic implements repo.Gateway
func (g *Gateway) TagDynamic(context.Context, string, domain.FilterState) ([]domain.Series, error) {
	return as[[]domain.Series](g.answer(domain.SliceTagDynamic))
}

// TagMessageMix implements repo.Gateway
func (g *Gateway) TagMessageMix(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceTagMessageMix))
}

// TagTone implements repo.Gateway
func (g *Gateway) TagTone(context.Context, string, domain.FilterState) ([]domain.CategoryPoint, error) {
	return as[[]domain.CategoryPoint](g.answer(domain.SliceTagTone))
}

// TagTable implements repo.Gateway
func (g *Gateway) TagTable(context.Context, string, domain.FilterState) (domain.TagTable, error) {
	return as[domain.TagTable](g.answer(domain.SliceTagTable))
}
