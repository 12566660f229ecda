// @title         Paysystem API
// @version       0.1.0
// @description   Customers, charges and their audit trail
// @BasePath      /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/config"
	"paysystem/internal/platform/logger"
	phttp "paysystem/internal/platform/net/http"
	"paysystem/internal/platform/store"

	"paysystem/internal/services/api"
)

func main() {
	// .env first so logger and config see it
	config.LoadDotEnv()
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP, auth and docs (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres from SERVICE_PGSQL_*, clickhouse only when SERVICE_CLICKHOUSE_DBURL is set
	st, err := store.Open(ctx, store.ConfigFromEnv("paysystem-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if err := store.Migrate(ctx, st); err != nil {
		l.Panic().Err(err).Msg("migrations failed")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Context:        ctx,
	})

	if err := srv.Run(ctx, apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second)); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
