package module

import (
	"context"

	"paysystem/internal/services/api/customers/domain"
	custsvc "paysystem/internal/services/api/customers/service"

	"github.com/google/uuid"
)

// Ports is what the customers module offers other modules
type Ports struct {
	Exists domain.ExistsPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Exists: adaptExists{svc: m.svc}} }

type adaptExists struct{ svc custsvc.Service }

// Exists returns NotFound unless id is a live customer
func (a adaptExists) Exists(ctx context.Context, id uuid.UUID) error {
	return a.svc.Exists(ctx, id)
}
