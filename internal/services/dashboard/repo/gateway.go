// Package repo is the gateway to the upstream analytics backend. One method
// per analytic view, every call an idempotent GET scoped by themeID and
// carrying the full current filter state as query parameters
package repo

import (
	"context"

	"themewatch/internal/services/dashboard/domain"
)

// Gateway is the upstream surface the orchestrator fans out against
type Gateway interface {
	Materials(ctx context.Context, themeID string, fs domain.FilterState) (domain.MaterialsPage, error)
	FilterCounts(ctx context.Context, themeID string, fs domain.FilterState) (domain.FilterCounts, error)
	MainSeries(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error)
	ToneByReview(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	LanguageByReview(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	SourceMessageMix(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	SourceDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error)
	SourceMessageType(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	SourceTone(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	SourceTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.SourceTable, error)
	AuthorDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error)
	AuthorTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.AuthorTable, error)
	TagDynamic(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.Series, error)
	TagMessageMix(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	TagTone(ctx context.Context, themeID string, fs domain.FilterState) ([]domain.CategoryPoint, error)
	TagTable(ctx context.Context, themeID string, fs domain.FilterState) (domain.TagTable, error)
}
