package modkit

import (
	"net/http"

	"paysystem/internal/platform/net/middleware"
	phttp "paysystem/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    []any
	auth     middleware.AuthPort
	guards   []func(http.Handler) http.Handler
	register func(phttp.Router)
}

// WithName sets a module name used in logs
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix relative to /api/v1
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports owned by other modules, repeatable
func WithPorts(ports ...any) Option {
	return func(c *buildCfg) { c.ports = append(c.ports, ports...) }
}

// WithAuth puts every route of the module behind bearer auth
// guards run after auth, in order, for example httpkit.AdminOnly
func WithAuth(p middleware.AuthPort, guards ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) {
		c.auth = p
		c.guards = append(c.guards, guards...)
	}
}

// WithRegister sets the function that attaches endpoints to the module router
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}
