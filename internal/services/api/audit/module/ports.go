package module

import (
	"context"

	"paysystem/internal/services/api/audit/domain"
	auditsvc "paysystem/internal/services/api/audit/service"
)

// Ports is what the audit module offers other modules
type Ports struct {
	Recorder domain.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptRecorder struct{ svc auditsvc.Service }

// Record stores one audit entry
func (a adaptRecorder) Record(ctx context.Context, e domain.Entry) error {
	return a.svc.Record(ctx, e)
}
