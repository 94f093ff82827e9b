// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"themewatch/internal/modkit/httpkit"
	"themewatch/internal/services/dashboard/domain"
	svc "themewatch/internal/services/dashboard/service"
)

// Register mounts dashboard endpoints on the given router. Every endpoint
// except session open expects X-Session-ID and X-Theme-ID headers
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// session lifecycle
	httpkit.Post(r, "/session", h.begin)
	httpkit.Get(r, "/snapshot", h.snapshot)

	// filter mutations, each returns the refreshed snapshot
	httpkit.PostJSON[domain.MaterialFilterInput](r, "/filters/material", h.applyMaterial)
	httpkit.PostJSON[domain.AuthorFilterInput](r, "/filters/author", h.applyAuthor)
	httpkit.PostJSON[domain.RemoveFilterInput](r, "/filters/remove", h.removeFilter)

	// time axis and list controls
	httpkit.PostJSON[domain.TimeRangeInput](r, "/range", h.setRange)
	httpkit.PostJSON[domain.ChartPeriodInput](r, "/period", h.setPeriod)
	httpkit.PostJSON[domain.ViewModeInput](r, "/mode", h.setMode)
	httpkit.PostJSON[domain.PageInput](r, "/page", h.setPage)

	// chart point click to filter
	httpkit.PostJSON[domain.DrillInput](r, "/drill", h.drill)
}

type handlers struct{ svc svc.Service }

// beginResponse carries the new session id alongside the first snapshot
type beginResponse struct {
	SessionID string          `json:"session_id"`
	Snapshot  domain.Snapshot `json:"snapshot"`
}

// @Summary Open a dashboard session
// @Tags Dashboard
// @Produce json
// @Param X-Theme-ID header string true "Theme"
// @Success 200 {object} beginResponse "ok"
// @Router /dashboard/session [post]
func (h *handlers) begin(r *stdhttp.Request) (any, error) {
	theme, err := httpkit.Theme(r)
	if err != nil {
		return nil, err
	}
	id, snap, err := h.svc.Begin(r.Context(), theme)
	if err != nil {
		return nil, err
	}
	return beginResponse{SessionID: id, Snapshot: snap}, nil
}

// @Summary Current session snapshot
// @Tags Dashboard
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/snapshot [get]
func (h *handlers) snapshot(r *stdhttp.Request) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Snapshot(r.Context(), sid, theme)
}

// @Summary Apply the material filter
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.MaterialFilterInput true "Filter"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/filters/material [post]
func (h *handlers) applyMaterial(r *stdhttp.Request, in domain.MaterialFilterInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ApplyMaterialFilter(r.Context(), sid, theme, in)
}

// @Summary Apply the author filter
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.AuthorFilterInput true "Filter"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/filters/author [post]
func (h *handlers) applyAuthor(r *stdhttp.Request, in domain.AuthorFilterInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ApplyAuthorFilter(r.Context(), sid, theme, in)
}

// @Summary Remove one active filter chip
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.RemoveFilterInput true "Chip"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/filters/remove [post]
func (h *handlers) removeFilter(r *stdhttp.Request, in domain.RemoveFilterInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.RemoveFilter(r.Context(), sid, theme, in)
}

// @Summary Set the analysed time range
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.TimeRangeInput true "Range"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/range [post]
func (h *handlers) setRange(r *stdhttp.Request, in domain.TimeRangeInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetTimeRange(r.Context(), sid, theme, in)
}

// @Summary Set the chart display granularity
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.ChartPeriodInput true "Period"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/period [post]
func (h *handlers) setPeriod(r *stdhttp.Request, in domain.ChartPeriodInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetChartPeriod(r.Context(), sid, theme, in)
}

// @Summary Switch the material list view mode
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.ViewModeInput true "Mode"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/mode [post]
func (h *handlers) setMode(r *stdhttp.Request, in domain.ViewModeInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetViewMode(r.Context(), sid, theme, in)
}

// @Summary Change the material list page
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.PageInput true "Page"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/page [post]
func (h *handlers) setPage(r *stdhttp.Request, in domain.PageInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetPage(r.Context(), sid, theme, in)
}

// @Summary Drill a chart point into a filter
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session"
// @Param X-Theme-ID header string true "Theme"
// @Param payload body domain.DrillInput true "Click"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /dashboard/drill [post]
func (h *handlers) drill(r *stdhttp.Request, in domain.DrillInput) (any, error) {
	sid, theme, err := ids(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DrillDown(r.Context(), sid, theme, in)
}

func ids(r *stdhttp.Request) (sessionID, themeID string, err error) {
	sessionID, err = httpkit.Session(r)
	if err != nil {
		return "", "", err
	}
	themeID, err = httpkit.Theme(r)
	if err != nil {
		return "", "", err
	}
	return sessionID, themeID, nil
}
