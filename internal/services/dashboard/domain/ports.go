package domain

import "context"

// ServicePort is the dashboard session contract exposed to transports and
// sibling modules. Every mutation returns the post-refresh snapshot so the
// caller never needs a second round trip to rehydrate
type ServicePort interface {
	// Begin opens a session against a theme and returns its id with the
	// initial snapshot
	Begin(ctx context.Context, themeID string) (string, Snapshot, error)

	// Snapshot returns the current session view without mutating anything
	Snapshot(ctx context.Context, sessionID, themeID string) (Snapshot, error)

	ApplyMaterialFilter(ctx context.Context, sessionID, themeID string, in MaterialFilterInput) (Snapshot, error)
	ApplyAuthorFilter(ctx context.Context, sessionID, themeID string, in AuthorFilterInput) (Snapshot, error)
	SetTimeRange(ctx context.Context, sessionID, themeID string, in TimeRangeInput) (Snapshot, error)
	SetChartPeriod(ctx context.Context, sessionID, themeID string, in ChartPeriodInput) (Snapshot, error)
	SetViewMode(ctx context.Context, sessionID, themeID string, in ViewModeInput) (Snapshot, error)
	SetPage(ctx context.Context, sessionID, themeID string, in PageInput) (Snapshot, error)
	DrillDown(ctx context.Context, sessionID, themeID string, in DrillInput) (Snapshot, error)
	RemoveFilter(ctx context.Context, sessionID, themeID string, in RemoveFilterInput) (Snapshot, error)
}
