// Package service records and lists the audit trail
package service

import (
	"context"
	"strings"

	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/logger"
	"paysystem/internal/services/api/audit/domain"
	"paysystem/internal/services/api/audit/repo"
)

// Service defines the audit service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the audit service over either backend
type Svc struct {
	Repo repo.Repo
	log  logger.Logger
}

// New constructs an audit service
func New(r repo.Repo, log logger.Logger) *Svc {
	if r == nil {
		panic("audit.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, log: log.With().Str("module", "audit").Logger()}
}

// Record stores one entry
func (s *Svc) Record(ctx context.Context, e domain.Entry) error {
	if strings.TrimSpace(e.EntityType) == "" || strings.TrimSpace(e.Action) == "" {
		return perr.InvalidArgf("audit entry needs entity_type and action")
	}
	if e.CustomerID == "" {
		e.CustomerID = domain.NoCustomer
	}
	if len(e.Details) == 0 {
		e.Details = []byte(`{}`)
	}
	saved, err := s.Repo.Insert(ctx, e)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "record audit %s %s", e.EntityType, e.Action)
	}
	s.log.Debug().
		Int64("audit_id", saved.ID).
		Str("entity", saved.EntityType).
		Str("action", saved.Action).
		Msg("audit recorded")
	return nil
}

// List returns one page of entries, newest first, and the total match count
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Entry, int, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}
	if in.Start != nil && in.End != nil && in.End.Before(*in.Start) {
		return nil, 0, perr.WithField(perr.Validationf("end_date must not be before start_date"), "end_date")
	}
	total, err := s.Repo.Count(ctx, in)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "count audit logs")
	}
	items, err := s.Repo.List(ctx, in)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "list audit logs")
	}
	return items, total, nil
}
