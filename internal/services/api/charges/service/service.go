// Package service contains charge workflows
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"paysystem/internal/core/money"
	"paysystem/internal/core/normalize"
	"paysystem/internal/modkit/repokit"
	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/logger"
	pnet "paysystem/internal/platform/net"
	str "paysystem/internal/platform/strings"
	audit "paysystem/internal/services/api/audit/domain"
	"paysystem/internal/services/api/charges/domain"
	"paysystem/internal/services/api/charges/repo"
	customers "paysystem/internal/services/api/customers/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const idempotencyKey = "charges_idempotency_key_key"

const duplicateCharge = "charge already registered with this idempotency key"

// Service defines the charge service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the charge service
type Svc struct {
	Repo      repo.Repo
	binder    repokit.Binder[repo.Repo]
	db        repokit.TxRunner
	customers customers.ExistsPort
	audit     audit.RecorderPort
	newID     func() uuid.UUID
}

// New constructs a charge service
// cust is required, rec may be nil to skip the audit trail
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cust customers.ExistsPort, rec audit.RecorderPort) *Svc {
	if db == nil {
		panic("charges.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("charges.Service requires a non nil Repo binder")
	}
	if cust == nil {
		panic("charges.Service requires a customers ExistsPort")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, customers: cust, audit: rec, newID: uuid.New}
}

// Create opens a PENDING charge for an existing customer
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Charge, error) {
	if err := s.customers.Exists(ctx, in.CustomerID); err != nil {
		if known(err) {
			return domain.Charge{}, err
		}
		return domain.Charge{}, s.fail(ctx, err, audit.ActionCreate, "failed to create charge")
	}
	c := domain.Charge{
		ID:             s.newID(),
		CustomerID:     in.CustomerID,
		Amount:         in.Amount.Round(money.Scale),
		Currency:       money.Currency(str.Deref(in.Currency)),
		Description:    text(in.Description),
		Status:         domain.StatusPending,
		PaymentMethod:  in.PaymentMethod,
		IdempotencyKey: normalize.Text(in.IdempotencyKey),
		DueDate:        in.DueDate,
		Metadata:       in.Metadata,
	}
	if err := checkFields(c.Amount, c.Currency, c.Metadata); err != nil {
		return domain.Charge{}, err
	}

	_, err := s.Repo.ByIdempotencyKey(ctx, c.IdempotencyKey)
	switch {
	case err == nil:
		return domain.Charge{}, perr.WithField(perr.BadRequestf(duplicateCharge), "idempotency_key")
	case !perr.IsCode(err, perr.ErrorCodeNotFound):
		return domain.Charge{}, s.fail(ctx, err, audit.ActionCreate, "failed to create charge")
	}

	if _, err := s.Repo.Create(ctx, c); err != nil {
		if perr.IsDuplicateKey(err) && perr.Constraint(err) == idempotencyKey {
			return domain.Charge{}, perr.WithField(perr.BadRequestf(duplicateCharge), "idempotency_key")
		}
		return domain.Charge{}, s.fail(ctx, err, audit.ActionCreate, "failed to create charge")
	}
	// reload for the customer summary
	out, err := s.Repo.ByID(ctx, c.ID)
	if err != nil {
		return domain.Charge{}, s.fail(ctx, err, audit.ActionCreate, "failed to create charge")
	}
	s.record(ctx, out, audit.ActionCreate, out, "charge created for customer "+out.CustomerID.String())
	return out, nil
}

// List pages live charges, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Charge, int, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}
	if in.Start != nil && in.End != nil && in.End.Before(*in.Start) {
		return nil, 0, perr.WithField(perr.Validationf("end_date must not be before start_date"), "end_date")
	}
	if in.MinAmount != nil && in.MaxAmount != nil && in.MaxAmount.LessThan(*in.MinAmount) {
		return nil, 0, perr.WithField(perr.Validationf("max_amount must not be below min_amount"), "max_amount")
	}

	total, err := s.Repo.Count(ctx, in)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count charges")
	}
	items, err := s.Repo.List(ctx, in)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list charges")
	}
	return items, total, nil
}

// ByCustomer returns every live charge of a customer
func (s *Svc) ByCustomer(ctx context.Context, customerID uuid.UUID) (domain.CustomerCharges, error) {
	if err := s.customers.Exists(ctx, customerID); err != nil {
		return domain.CustomerCharges{}, err
	}
	items, err := s.Repo.ByCustomer(ctx, customerID)
	if err != nil {
		return domain.CustomerCharges{}, perr.FromPostgres(err, "list customer charges")
	}
	return domain.CustomerCharges{Total: len(items), Data: items}, nil
}

// Get returns a live charge
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.Charge, error) {
	c, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.Charge{}, notFound(err, id, "load charge")
	}
	return c, nil
}

// Update patches the mutable fields of a charge
func (s *Svc) Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Charge, error) {
	if in.Amount != nil {
		a := in.Amount.Round(money.Scale)
		in.Amount = &a
	}
	if in.Currency != nil {
		cur := money.Currency(*in.Currency)
		in.Currency = &cur
	}
	in.Description = text(in.Description)
	in.FailureReason = text(in.FailureReason)

	var before, after domain.Charge
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if before, err = r.ByID(ctx, id); err != nil {
			return notFound(err, id, "load charge")
		}
		if in.Empty() {
			after = before
			return nil
		}
		amount, currency := before.Amount, before.Currency
		if in.Amount != nil {
			amount = *in.Amount
		}
		if in.Currency != nil {
			currency = *in.Currency
		}
		if err := checkFields(amount, currency, in.Metadata); err != nil {
			return err
		}
		if after, err = r.Update(ctx, id, in); err != nil {
			return notFound(err, id, "update charge")
		}
		return nil
	})
	if err != nil {
		return domain.Charge{}, err
	}
	if !in.Empty() {
		s.record(ctx, after, audit.ActionUpdate, audit.Change{Before: before, After: after}, "charge "+id.String()+" updated")
	}
	return after, nil
}

// Delete soft deletes a charge
func (s *Svc) Delete(ctx context.Context, id uuid.UUID) (domain.Removed, error) {
	var gone domain.Charge
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if gone, err = r.ByID(ctx, id); err != nil {
			return notFound(err, id, "load charge")
		}
		if err := r.SoftDelete(ctx, id); err != nil {
			return notFound(err, id, "delete charge")
		}
		return nil
	})
	if err != nil {
		return domain.Removed{}, err
	}
	s.record(ctx, gone, audit.ActionDelete, gone, "charge "+id.String()+" removed")
	return domain.Removed{Message: "charge " + id.String() + " removed", Data: gone}, nil
}

// UpdateStatus moves a charge to another status, PAID stamps paid_at
func (s *Svc) UpdateStatus(ctx context.Context, id uuid.UUID, in domain.StatusInput) (domain.Charge, error) {
	var before, after domain.Charge
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var err error
		if before, err = r.ByID(ctx, id); err != nil {
			return notFound(err, id, "load charge")
		}
		if before.Status == in.Status {
			return perr.WithField(perr.BadRequestf("charge already has status %s", in.Status), "status")
		}
		if after, err = r.SetStatus(ctx, id, in.Status); err != nil {
			return notFound(err, id, "update charge status")
		}
		return nil
	})
	if err != nil {
		if known(err) {
			return domain.Charge{}, err
		}
		return domain.Charge{}, s.fail(ctx, err, audit.ActionUpdateStatus, "failed to update charge status")
	}
	msg := fmt.Sprintf("charge %s moved from %s to %s", id, before.Status, after.Status)
	s.record(ctx, after, audit.ActionUpdateStatus, audit.Change{Before: before, After: after}, msg)
	return after, nil
}

// checkFields covers what struct tags cannot express
func checkFields(amount decimal.Decimal, currency string, metadata json.RawMessage) error {
	if !money.InRange(amount) {
		return perr.WithField(perr.Validationf("amount must be greater than 0 and at most %s", money.Max), "amount")
	}
	if !money.ValidCurrency(currency) {
		return perr.WithField(perr.Validationf("currency must be a 3 letter code"), "currency")
	}
	if len(metadata) > 0 {
		trimmed := bytes.TrimSpace(metadata)
		if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
			return perr.WithField(perr.Validationf("metadata must be a JSON object"), "metadata")
		}
	}
	return nil
}

// record writes the audit entry, failures are logged since the write already happened
func (s *Svc) record(ctx context.Context, c domain.Charge, action string, details any, msg string) {
	if s.audit == nil {
		return
	}
	e := audit.NewEntry(c.CustomerID.String(), audit.EntityCharge, action, pnet.UserID(ctx), details, msg)
	if err := s.audit.Record(ctx, e); err != nil {
		logger.C(ctx).Error().Err(err).Str("charge_id", c.ID.String()).Str("action", action).Msg("audit write failed")
	}
}

// fail records an error entry for an unexpected failure and returns a 500
func (s *Svc) fail(ctx context.Context, cause error, action, msg string) error {
	logger.C(ctx).Error().Err(cause).Str("action", action).Msg(msg)
	if s.audit != nil {
		e := audit.NewEntry(audit.NoCustomer, audit.EntityCharge, action, pnet.UserID(ctx), audit.Failure{Error: cause.Error()}, msg)
		if err := s.audit.Record(ctx, e); err != nil {
			logger.C(ctx).Error().Err(err).Str("action", action).Msg("audit write failed")
		}
	}
	return perr.Wrap(cause, perr.ErrorCodeUnknown, msg)
}

// known reports errors that already carry a client facing code
func known(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeNotFound, perr.ErrorCodeBadRequest, perr.ErrorCodeValidation, perr.ErrorCodeConflict:
		return true
	}
	return false
}

func notFound(err error, id uuid.UUID, op string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) || perr.IsNoRows(err) {
		return perr.NotFoundf("charge %s not found", id)
	}
	return perr.FromPostgres(err, op)
}

func text(p *string) *string {
	if p == nil {
		return nil
	}
	return str.Ptr(normalize.Text(*p))
}
