// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"themewatch/internal/platform/config"
	perr "themewatch/internal/platform/errors"
	"themewatch/internal/platform/logger"
	"themewatch/internal/platform/metrics"
	phttp "themewatch/internal/platform/net/http"
	"themewatch/internal/platform/store"

	"themewatch/internal/modkit"
	"themewatch/internal/modkit/httpkit"
	"themewatch/internal/modkit/module"
	"themewatch/internal/modkit/swaggerkit"

	metamod "themewatch/internal/services/api/meta/module"
	dashmod "themewatch/internal/services/dashboard/module"
	dashrepo "themewatch/internal/services/dashboard/repo"
	presetsmod "themewatch/internal/services/presets/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Analytics      *dashrepo.Client
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// themeRequired rejects requests that carry no theme scope
type themeRequired struct{}

func (themeRequired) Validate(_ *stdhttp.Request, themeID string) error {
	if themeID == "" {
		return perr.InvalidArgf("missing theme id")
	}
	return nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// identity headers populate session and theme scope for dashboard routes
	identity := httpkit.Identity(httpkit.NewPortFunc(nil))
	themed := httpkit.ThemeGuard(themeRequired{}, phttp.JSON)

	mods := []module.Module{
		metamod.New(deps, opt.Analytics),
		dashmod.New(deps, opt.Analytics, modkit.WithMiddlewares(identity, themed)),
		presetsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}
}
