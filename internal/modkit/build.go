package modkit

import (
	"net/http"

	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/platform/net/middleware"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  []any

	Auth   middleware.AuthPort
	Guards []func(http.Handler) http.Handler

	Register func(httpkit.Router)
}

// Build applies opts and defaults Register to a no-op
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    append([]any(nil), c.ports...),
		Auth:     c.auth,
		Guards:   append([]func(http.Handler) http.Handler(nil), c.guards...),
		Register: c.register,
	}
}

// Mount routes the module under its prefix, applies middleware and auth,
// then calls Register on the subrouter
func (b Built) Mount(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		if b.Auth == nil {
			b.Register(sub)
			return
		}
		httpkit.Protected(sub, b.Auth, func(pr httpkit.Router) {
			b.Register(pr)
		}, b.Guards...)
	})
}

// Port returns the first injected port that is, or carries, a T
func Port[T any](b Built) (T, bool) {
	for _, p := range b.Ports {
		if v, ok := portIn[T](p); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
