// Package service contains customer workflows
package service

import (
	"context"
	"strings"

	"paysystem/internal/core/normalize"
	"paysystem/internal/modkit/repokit"
	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/logger"
	pnet "paysystem/internal/platform/net"
	str "paysystem/internal/platform/strings"
	audit "paysystem/internal/services/api/audit/domain"
	"paysystem/internal/services/api/customers/domain"
	"paysystem/internal/services/api/customers/repo"

	"github.com/google/uuid"
)

// unique index names from the schema
const (
	emailKey    = "customers_email_key"
	documentKey = "customers_document_key"
)

// Service defines the customer service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the customer service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	audit  audit.RecorderPort
	newID  func() uuid.UUID
}

// New constructs a customer service, rec may be nil to skip the audit trail
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], rec audit.RecorderPort) *Svc {
	if db == nil {
		panic("customers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("customers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, audit: rec, newID: uuid.New}
}

// Create registers a customer, email and document must be unused
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Customer, error) {
	c := domain.Customer{
		ID:       s.newID(),
		Name:     normalize.Text(in.Name),
		Email:    normalize.Email(in.Email),
		Document: trimmed(in.Document),
		Phone:    trimmed(in.Phone),
	}
	if err := s.checkConflict(ctx, s.Repo, c.Email, c.Document, nil); err != nil {
		return domain.Customer{}, err
	}
	out, err := s.Repo.Create(ctx, c)
	if err != nil {
		return domain.Customer{}, mapWriteErr(err, "create customer")
	}
	s.record(ctx, out.ID, audit.ActionCreate, out, "customer created")
	return out, nil
}

// List pages live customers, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Customer, int, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}
	in.Search = normalize.SearchTerm(in.Search)

	total, err := s.Repo.Count(ctx, in)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count customers")
	}
	items, err := s.Repo.List(ctx, in)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list customers")
	}
	return items, total, nil
}

// Get returns a live customer
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	c, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.Customer{}, notFound(err, id, "load customer")
	}
	return c, nil
}

// Exists returns NotFound unless id is a live customer
func (s *Svc) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := s.Get(ctx, id)
	return err
}

// Update patches a customer, new email or document must not belong to another customer
func (s *Svc) Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Customer, error) {
	if in.Name != nil {
		in.Name = str.Ptr(normalize.Text(*in.Name))
	}
	if in.Email != nil {
		in.Email = str.Ptr(normalize.Email(*in.Email))
	}
	in.Document = trimmed(in.Document)
	in.Phone = trimmed(in.Phone)

	var before, after domain.Customer
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if before, err = r.ByID(ctx, id); err != nil {
			return notFound(err, id, "load customer")
		}
		if in.Empty() {
			after = before
			return nil
		}
		if err := s.checkConflict(ctx, r, str.Deref(in.Email), in.Document, &id); err != nil {
			return err
		}
		if after, err = r.Update(ctx, id, in); err != nil {
			return mapWriteErr(err, "update customer")
		}
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}
	if !in.Empty() {
		s.record(ctx, id, audit.ActionUpdate, audit.Change{Before: before, After: after}, "customer updated")
	}
	return after, nil
}

// Delete soft deletes a customer that has no charges
func (s *Svc) Delete(ctx context.Context, id uuid.UUID) (domain.Removed, error) {
	var gone domain.Customer
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if gone, err = r.ByID(ctx, id); err != nil {
			return notFound(err, id, "load customer")
		}
		n, err := r.CountCharges(ctx, id)
		if err != nil {
			return perr.FromPostgres(err, "count charges")
		}
		if n > 0 {
			return perr.Conflictf("customer has charges and cannot be removed")
		}
		if err := r.SoftDelete(ctx, id); err != nil {
			return notFound(err, id, "delete customer")
		}
		return nil
	})
	if err != nil {
		return domain.Removed{}, err
	}
	s.record(ctx, id, audit.ActionDelete, gone, "customer removed")
	return domain.Removed{Message: "customer " + id.String() + " removed"}, nil
}

func (s *Svc) checkConflict(ctx context.Context, r repo.Repo, email string, document *string, exclude *uuid.UUID) error {
	if email == "" && document == nil {
		return nil
	}
	other, err := r.Conflict(ctx, email, document, exclude)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return nil
		}
		return perr.FromPostgres(err, "check customer uniqueness")
	}
	if email != "" && other.Email == email {
		return perr.WithField(perr.Conflictf("email already registered"), "email")
	}
	return perr.WithField(perr.Conflictf("document already registered"), "document")
}

// record writes the audit entry, failures are logged since the write already happened
func (s *Svc) record(ctx context.Context, id uuid.UUID, action string, details any, msg string) {
	if s.audit == nil {
		return
	}
	e := audit.NewEntry(id.String(), audit.EntityCustomer, action, pnet.UserID(ctx), details, msg)
	if err := s.audit.Record(ctx, e); err != nil {
		logger.C(ctx).Error().Err(err).Str("customer_id", id.String()).Str("action", action).Msg("audit write failed")
	}
}

// mapWriteErr turns unique violations that slipped past the precheck into 409s
func mapWriteErr(err error, op string) error {
	if perr.IsDuplicateKey(err) {
		switch perr.Constraint(err) {
		case emailKey:
			return perr.WithField(perr.Conflictf("email already registered"), "email")
		case documentKey:
			return perr.WithField(perr.Conflictf("document already registered"), "document")
		}
	}
	return perr.FromPostgres(err, op)
}

func notFound(err error, id uuid.UUID, op string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) || perr.IsNoRows(err) {
		return perr.NotFoundf("customer %s not found", id)
	}
	return perr.FromPostgres(err, op)
}

// trimmed drops surrounding blanks, blank values become nil
func trimmed(p *string) *string { return str.Ptr(strings.TrimSpace(str.Deref(p))) }
