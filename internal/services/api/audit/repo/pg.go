package repo

import (
	"context"

	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/store"
	"paysystem/internal/services/api/audit/domain"
)

type (
	// PG binds the audit repo to postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres audit table
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const pgColumns = `id, customer_id, entity_type, action, user_id, details, message, created_at`

// filters are shared by List and Count, $1..$3
const pgWhere = `
where ($1 = '' or customer_id = $1)
and ($2::timestamptz is null or created_at >= $2)
and ($3::timestamptz is null or created_at <= $3)
`

func (r *queries) Insert(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	const sql = `
insert into audit_logs (customer_id, entity_type, action, user_id, details, message)
values ($1, $2, $3, $4, $5, $6)
returning id, created_at
`
	err := r.q.QueryRow(ctx, sql,
		e.CustomerID, e.EntityType, e.Action, e.UserID, []byte(e.Details), e.Message,
	).Scan(&e.ID, &e.CreatedAt)
	return e, err
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Entry, error) {
	sql := `select ` + pgColumns + ` from audit_logs` + pgWhere + `order by id desc limit $4 offset $5`
	return store.Many(ctx, r.q, scanPG, sql, in.CustomerID, in.Start, in.End, in.Limit, in.Offset())
}

func (r *queries) Count(ctx context.Context, in domain.ListInput) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*) from audit_logs`+pgWhere, in.CustomerID, in.Start, in.End)
}

func scanPG(row store.Row) (domain.Entry, error) {
	var e domain.Entry
	var details []byte
	err := row.Scan(&e.ID, &e.CustomerID, &e.EntityType, &e.Action, &e.UserID, &details, &e.Message, &e.CreatedAt)
	e.Details = details
	return e, err
}
