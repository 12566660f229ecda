// Package module wires meta endpoints into the API
package module

import (
	"time"

	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	str "paysystem/internal/platform/strings"
	metahttp "paysystem/internal/services/api/meta/http"
)

// ServiceName is reported by health and service probes
const ServiceName = "paysystem-api"

// Module implements the meta module
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs the meta module, it is mounted without auth
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{built: b, startedAt: time.Now()}

	d := metahttp.Deps{ServiceName: ServiceName, StartedAt: m.startedAt}
	// typed nils would defeat the skipped check
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}

	external := m.built.Register
	m.built.Register = func(r httpkit.Router) {
		metahttp.Register(r, d)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns nothing, meta has no consumers
func (m *Module) Ports() any { return nil }
