// Package module wires auth into the API using modkit
package module

import (
	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/platform/net/middleware"
	str "paysystem/internal/platform/strings"
	authhttp "paysystem/internal/services/api/auth/http"
	authrepo "paysystem/internal/services/api/auth/repo"
	authsvc "paysystem/internal/services/api/auth/service"
)

// Module implements the auth module
type Module struct {
	built   modkit.Built
	svc     authsvc.Service
	tokens  *authsvc.Tokens
	port    *httpkit.Port
	limiter *middleware.RateStore
}

// New constructs the auth module
// token settings come from deps.Cfg, a missing JWT_SECRET panics at boot
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	tokens, err := authsvc.NewTokens(authsvc.TokenConfigFromEnv(deps.Cfg))
	if err != nil {
		panic(err)
	}
	limiter := middleware.NewRateStore(
		deps.Cfg.MayFloat64("AUTH_RATE", 5),
		deps.Cfg.MayInt("AUTH_BURST", 10),
	)

	m := &Module{
		svc:     authsvc.New(deps.PG, authrepo.NewPG(), tokens),
		tokens:  tokens,
		port:    httpkit.NewPortFunc(tokens.Verify),
		limiter: limiter,
	}

	base := []modkit.Option{
		modkit.WithName("auth"),
		modkit.WithPrefix("/auth"),
		modkit.WithMiddlewares(httpkit.RateLimited(limiter)),
	}
	m.built = modkit.Build(append(base, opts...)...)

	external := m.built.Register
	m.built.Register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc, m.port)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Limiter is the per client bucket store guarding /auth, its janitor is started by the caller
func (m *Module) Limiter() *middleware.RateStore { return m.limiter }
