// Package repo stores charges in postgres
package repo

import (
	"context"

	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/store"
	"paysystem/internal/services/api/charges/domain"

	"github.com/google/uuid"
)

// Repo is the persistence surface for charges
type Repo interface {
	Create(ctx context.Context, c domain.Charge) (domain.Charge, error)
	// ByIdempotencyKey looks at every charge, soft deleted ones included
	ByIdempotencyKey(ctx context.Context, key string) (domain.Charge, error)
	ByID(ctx context.Context, id uuid.UUID) (domain.Charge, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Charge, error)
	Count(ctx context.Context, in domain.ListInput) (int, error)
	ByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Charge, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Charge, error)
	// SetStatus moves the charge to status, PAID stamps paid_at
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Charge, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type (
	// PG binds the charge repo to postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the charges table
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const selectJoined = `
select c.id, c.customer_id, c.amount, c.currency, c.description, c.status, c.payment_method,
	c.idempotency_key, c.due_date, c.paid_at, c.failure_reason, c.metadata,
	c.created_at, c.updated_at, c.deleted_at,
	cu.id, cu.name, cu.email, cu.document, cu.phone
`

const fromJoined = ` from charges c join customers cu on cu.id = c.customer_id `

// filters $1..$7, shared by List and Count
const listWhere = `
where c.deleted_at is null
and ($1::uuid is null or c.customer_id = $1)
and ($2 = '' or c.status = $2)
and ($3 = '' or c.payment_method = $3)
and ($4::numeric is null or c.amount >= $4)
and ($5::numeric is null or c.amount <= $5)
and ($6::timestamptz is null or c.created_at >= $6)
and ($7::timestamptz is null or c.created_at <= $7)
`

func listArgs(in domain.ListInput) []any {
	return []any{in.CustomerID, string(in.Status), string(in.PaymentMethod), in.MinAmount, in.MaxAmount, in.Start, in.End}
}

func (r *queries) Create(ctx context.Context, c domain.Charge) (domain.Charge, error) {
	const sql = `
insert into charges (id, customer_id, amount, currency, description, status, payment_method,
	idempotency_key, due_date, metadata)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
returning created_at, updated_at
`
	err := r.q.QueryRow(ctx, sql,
		c.ID, c.CustomerID, c.Amount, c.Currency, c.Description, string(c.Status), string(c.PaymentMethod),
		c.IdempotencyKey, c.DueDate, nullJSON(c.Metadata),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *queries) ByIdempotencyKey(ctx context.Context, key string) (domain.Charge, error) {
	return store.One(ctx, r.q, scan, selectJoined+fromJoined+`where c.idempotency_key = $1`, key)
}

func (r *queries) ByID(ctx context.Context, id uuid.UUID) (domain.Charge, error) {
	return store.One(ctx, r.q, scan, selectJoined+fromJoined+`where c.id = $1 and c.deleted_at is null`, id)
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Charge, error) {
	sql := selectJoined + fromJoined + listWhere + `order by c.created_at desc, c.id limit $8 offset $9`
	return store.Many(ctx, r.q, scan, sql, append(listArgs(in), in.Limit, in.Offset())...)
}

func (r *queries) Count(ctx context.Context, in domain.ListInput) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)`+fromJoined+listWhere, listArgs(in)...)
}

func (r *queries) ByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Charge, error) {
	sql := selectJoined + fromJoined + `where c.customer_id = $1 and c.deleted_at is null order by c.created_at desc, c.id`
	return store.Many(ctx, r.q, scan, sql, customerID)
}

func (r *queries) Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Charge, error) {
	const sql = `
with c as (
	update charges set
		amount = coalesce($2, amount),
		currency = coalesce($3, currency),
		description = coalesce($4, description),
		due_date = coalesce($5, due_date),
		failure_reason = coalesce($6, failure_reason),
		metadata = coalesce($7, metadata),
		updated_at = now()
	where id = $1 and deleted_at is null
	returning *
)` + selectJoined + ` from c join customers cu on cu.id = c.customer_id`
	return store.One(ctx, r.q, scan, sql, id, in.Amount, in.Currency, in.Description, in.DueDate, in.FailureReason, nullJSON(in.Metadata))
}

func (r *queries) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) (domain.Charge, error) {
	const sql = `
with c as (
	update charges set
		status = $2,
		paid_at = case when $2 = 'PAID' then now() else paid_at end,
		updated_at = now()
	where id = $1 and deleted_at is null
	returning *
)` + selectJoined + ` from c join customers cu on cu.id = c.customer_id`
	return store.One(ctx, r.q, scan, sql, id, string(status))
}

func (r *queries) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return store.ExecOne(ctx, r.q,
		`update charges set deleted_at = now(), updated_at = now() where id = $1 and deleted_at is null`, id)
}

func scan(row store.Row) (domain.Charge, error) {
	var c domain.Charge
	var cu domain.CustomerSummary
	var meta []byte
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.Amount, &c.Currency, &c.Description, &c.Status, &c.PaymentMethod,
		&c.IdempotencyKey, &c.DueDate, &c.PaidAt, &c.FailureReason, &meta,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
		&cu.ID, &cu.Name, &cu.Email, &cu.Document, &cu.Phone,
	)
	if len(meta) > 0 {
		c.Metadata = meta
	}
	c.Customer = &cu
	return c, err
}

// nullJSON sends an absent document as SQL NULL
func nullJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
