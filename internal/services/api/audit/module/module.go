// Package module wires the audit trail into the API using modkit
package module

import (
	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	str "paysystem/internal/platform/strings"
	audithttp "paysystem/internal/services/api/audit/http"
	auditrepo "paysystem/internal/services/api/audit/repo"
	auditsvc "paysystem/internal/services/api/audit/service"
)

// Module implements the audit module
type Module struct {
	built   modkit.Built
	backend string
	svc     auditsvc.Service
	ports   any
}

// New constructs the audit module
// the trail goes to clickhouse when deps carry a connection, else to postgres
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{}

	var r auditrepo.Repo
	if deps.HasClickhouse() {
		r, m.backend = auditrepo.NewCH(deps.CH), "clickhouse"
	} else {
		r, m.backend = auditrepo.NewPG().Bind(deps.PG), "postgres"
	}
	m.svc = auditsvc.New(r, deps.Log)
	m.ports = Ports{Recorder: adaptRecorder{svc: m.svc}}

	base := []modkit.Option{modkit.WithName("audit"), modkit.WithPrefix("/audit")}
	m.built = modkit.Build(append(base, opts...)...)

	external := m.built.Register
	m.built.Register = func(r httpkit.Router) {
		audithttp.Register(r, m.svc)
		external(r)
	}

	deps.Log.Info().Str("backend", m.backend).Msg("audit trail ready")
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Backend names the store the trail is written to
func (m *Module) Backend() string { return m.backend }
