// Package module wires charges into the API using modkit
package module

import (
	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	str "paysystem/internal/platform/strings"
	audit "paysystem/internal/services/api/audit/domain"
	chhttp "paysystem/internal/services/api/charges/http"
	chrepo "paysystem/internal/services/api/charges/repo"
	chsvc "paysystem/internal/services/api/charges/service"
	customers "paysystem/internal/services/api/customers/domain"
)

// Module implements the charges module
type Module struct {
	built modkit.Built
	svc   chsvc.Service
}

// New constructs the charges module
// the customers ports are required, the audit recorder is optional
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	base := []modkit.Option{modkit.WithName("charges"), modkit.WithPrefix("/charges")}
	b := modkit.Build(append(base, opts...)...)

	cust, ok := modkit.Port[customers.ExistsPort](b)
	if !ok {
		panic("charges module requires the customers ports")
	}
	rec, _ := modkit.Port[audit.RecorderPort](b)
	m := &Module{built: b, svc: chsvc.New(deps.PG, chrepo.NewPG(), cust, rec)}

	external := m.built.Register
	m.built.Register = func(r httpkit.Router) {
		chhttp.Register(r, m.svc)
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

// Ports returns nothing, charges is a leaf module
func (m *Module) Ports() any { return nil }
