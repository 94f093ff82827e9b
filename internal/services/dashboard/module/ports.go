package module

import (
	"context"

	"themewatch/internal/services/dashboard/domain"
	dashsvc "themewatch/internal/services/dashboard/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDashboardPort struct{ svc dashsvc.Service }

// Begin opens a session against a theme
func (a adaptDashboardPort) Begin(ctx context.Context, themeID string) (string, domain.Snapshot, error) {
	return a.svc.Begin(ctx, themeID)
}

// Snapshot returns the current session view
func (a adaptDashboardPort) Snapshot(ctx context.Context, sessionID, themeID string) (domain.Snapshot, error) {
	return a.svc.Snapshot(ctx, sessionID, themeID)
}
