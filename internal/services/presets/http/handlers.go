// Package http provides http transport for presets
package http

import (
	stdhttp "net/http"

	"themewatch/internal/modkit/httpkit"
	"themewatch/internal/services/presets/domain"
	svc "themewatch/internal/services/presets/service"
)

// Register mounts preset endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.RenameInput](r, "/rename", h.rename)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.delete)
}

type handlers struct{ svc svc.Service }

// @Summary Save the current filter combination
// @Tags Presets
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Preset"
// @Success 200 {object} domain.Preset "ok"
// @Router /presets/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary List presets for a theme
// @Tags Presets
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Theme"
// @Success 200 {array} domain.Preset "ok"
// @Router /presets/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Fetch one preset
// @Tags Presets
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Preset "ok"
// @Router /presets/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Rename a preset
// @Tags Presets
// @Accept json
// @Produce json
// @Param payload body domain.RenameInput true "Rename"
// @Success 200 {object} domain.Preset "ok"
// @Router /presets/rename [post]
func (h *handlers) rename(r *stdhttp.Request, in domain.RenameInput) (any, error) {
	return h.svc.Rename(r.Context(), in)
}

// @Summary Delete a preset
// @Tags Presets
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /presets/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	if err := h.svc.Delete(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
