// Package module wires the dashboard into the API using modkit
package module

import (
	"net/http"

	modkit "themewatch/internal/modkit"
	"themewatch/internal/modkit/httpkit"
	str "themewatch/internal/platform/strings"
	dashhttp "themewatch/internal/services/dashboard/http"
	"themewatch/internal/services/dashboard/repo"
	dashsvc "themewatch/internal/services/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dashsvc.Service
}

// New constructs the dashboard module over the analytics gateway
func New(deps modkit.Deps, gw repo.Gateway, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")}, opts...)...)

	svc := dashsvc.New(gw)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDashboardPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dashhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
