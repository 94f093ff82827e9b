package module

import (
	"context"

	"themewatch/internal/services/presets/domain"
	pressvc "themewatch/internal/services/presets/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptPresetsPort struct{ svc pressvc.Service }

// Get returns one preset with its decoded filter state
func (a adaptPresetsPort) Get(ctx context.Context, in domain.GetInput) (domain.Preset, error) {
	return a.svc.Get(ctx, in)
}

// List returns every preset saved for a theme
func (a adaptPresetsPort) List(ctx context.Context, in domain.ListInput) ([]domain.Preset, error) {
	return a.svc.List(ctx, in)
}
