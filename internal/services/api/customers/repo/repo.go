// Package repo stores customers in postgres
package repo

import (
	"context"

	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/store"
	"paysystem/internal/services/api/customers/domain"

	"github.com/google/uuid"
)

// Repo is the persistence surface for customers
type Repo interface {
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	// Conflict returns any customer, deleted ones included, holding email or document
	// other than exclude. perr.ErrNotFound means the pair is free
	Conflict(ctx context.Context, email string, document *string, exclude *uuid.UUID) (domain.Customer, error)
	ByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Customer, error)
	Count(ctx context.Context, in domain.ListInput) (int, error)
	Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Customer, error)
	CountCharges(ctx context.Context, id uuid.UUID) (int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type (
	// PG binds the customer repo to postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the customers table
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const columns = `id, name, email, document, phone, created_at, updated_at, deleted_at`

// search is $1, already wildcard escaped
const listWhere = `
where deleted_at is null
and ($1 = '' or name ilike '%' || $1 || '%' or email ilike '%' || $1 || '%' or document ilike '%' || $1 || '%')
`

func (r *queries) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	const sql = `
insert into customers (id, name, email, document, phone)
values ($1, $2, $3, $4, $5)
returning created_at, updated_at
`
	err := r.q.QueryRow(ctx, sql, c.ID, c.Name, c.Email, c.Document, c.Phone).Scan(&c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *queries) Conflict(ctx context.Context, email string, document *string, exclude *uuid.UUID) (domain.Customer, error) {
	const sql = `
select ` + columns + ` from customers
where ($3::uuid is null or id <> $3)
and (($1 <> '' and email = $1) or ($2::text is not null and document = $2))
limit 1
`
	return store.One(ctx, r.q, scan, sql, email, document, exclude)
}

func (r *queries) ByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	return store.One(ctx, r.q, scan, `select `+columns+` from customers where id = $1 and deleted_at is null`, id)
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Customer, error) {
	sql := `select ` + columns + ` from customers` + listWhere + `order by created_at desc, id limit $2 offset $3`
	return store.Many(ctx, r.q, scan, sql, in.Search, in.Limit, in.Offset())
}

func (r *queries) Count(ctx context.Context, in domain.ListInput) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*) from customers`+listWhere, in.Search)
}

func (r *queries) Update(ctx context.Context, id uuid.UUID, in domain.UpdateInput) (domain.Customer, error) {
	const sql = `
update customers set
	name = coalesce($2, name),
	email = coalesce($3, email),
	document = coalesce($4, document),
	phone = coalesce($5, phone),
	updated_at = now()
where id = $1 and deleted_at is null
returning ` + columns
	return store.One(ctx, r.q, scan, sql, id, in.Name, in.Email, in.Document, in.Phone)
}

// CountCharges counts every charge of the customer, soft deleted ones too
func (r *queries) CountCharges(ctx context.Context, id uuid.UUID) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*) from charges where customer_id = $1`, id)
}

func (r *queries) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return store.ExecOne(ctx, r.q,
		`update customers set deleted_at = now(), updated_at = now() where id = $1 and deleted_at is null`, id)
}

func scan(row store.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Document, &c.Phone, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}
