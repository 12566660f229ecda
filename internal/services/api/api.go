// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/modkit/repokit"
	"paysystem/internal/modkit/swaggerkit"
	"paysystem/internal/platform/config"
	"paysystem/internal/platform/logger"
	phttp "paysystem/internal/platform/net/http"
	"paysystem/internal/platform/store"

	auditmod "paysystem/internal/services/api/audit/module"
	authmod "paysystem/internal/services/api/auth/module"
	chargesmod "paysystem/internal/services/api/charges/module"
	customersmod "paysystem/internal/services/api/customers/module"
	metamod "paysystem/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool
	// Context bounds background work such as the rate limit janitor
	Context context.Context
}

// Mount builds every module and mounts them under /api/v1
func Mount(r phttp.Router, opt Options) {
	ctx := opt.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.Named("api")

	deps := modkit.DepsFrom(opt.Store, opt.Config)
	deps.PG = repokit.WithBeginHooks(deps.PG,
		repokit.StatementTimeout(opt.Config.MayDuration("STATEMENT_TIMEOUT", 5*time.Second)))

	auth := authmod.New(deps).(*authmod.Module)
	authPort := modkit.MustPortsOf[authmod.Ports](auth).Auth
	auth.Limiter().StartJanitor(ctx, opt.Config.MayDuration("AUTH_RATE_JANITOR", time.Minute))

	// the trail itself is read by administrators only
	audit := auditmod.New(deps, modkit.WithAuth(authPort, httpkit.AdminOnly))
	customers := customersmod.New(deps,
		modkit.WithPorts(audit.Ports()),
		modkit.WithAuth(authPort, httpkit.AdminOnly),
	)
	charges := chargesmod.New(deps,
		modkit.WithPorts(audit.Ports(), customers.Ports()),
		modkit.WithAuth(authPort, httpkit.AdminOnly),
	)
	mods := []modkit.Module{
		metamod.New(deps),
		auth,
		customers,
		charges,
		audit,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", time.Second),
		TrustProxy:  opt.Config.MayBool("TRUST_PROXY", false),
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
	log.Info().Int("modules", len(mods)).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
}
