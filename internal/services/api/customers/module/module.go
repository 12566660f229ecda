// Package module wires customers into the API using modkit
package module

import (
	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	str "paysystem/internal/platform/strings"
	audit "paysystem/internal/services/api/audit/domain"
	custhttp "paysystem/internal/services/api/customers/http"
	custrepo "paysystem/internal/services/api/customers/repo"
	custsvc "paysystem/internal/services/api/customers/service"
)

// Module implements the customers module
type Module struct {
	built modkit.Built
	svc   custsvc.Service
}

// New constructs the customers module
// pass the audit recorder with modkit.WithPorts to keep a trail of writes
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	base := []modkit.Option{modkit.WithName("customers"), modkit.WithPrefix("/customers")}
	b := modkit.Build(append(base, opts...)...)

	rec, _ := modkit.Port[audit.RecorderPort](b)
	m := &Module{built: b, svc: custsvc.New(deps.PG, custrepo.NewPG(), rec)}

	external := m.built.Register
	m.built.Register = func(r httpkit.Router) {
		custhttp.Register(r, m.svc)
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
