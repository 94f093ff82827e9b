// @title         Themewatch API
// @version       0.1.0
// @description   Dashboard session, filter and analytics refresh endpoints

package main

import (
	"context"

	"themewatch/internal/platform/config"
	"themewatch/internal/platform/logger"
	phttp "themewatch/internal/platform/net/http"
	"themewatch/internal/platform/store"

	"themewatch/internal/services/api"
	dashrepo "themewatch/internal/services/dashboard/repo"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")            // pgCfg lives under SERVICE_PGSQL_*
	analyticsCfg := root.Prefix("SERVICE_ANALYTICS_") // analytics backend lives under SERVICE_ANALYTICS_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres, presets live here)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// analytics backend client (reads SERVICE_ANALYTICS_URL)
	analytics := dashrepo.NewClient(analyticsCfg.MustURL("URL"), nil)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Analytics:      analytics,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
