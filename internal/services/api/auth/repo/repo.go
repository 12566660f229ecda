// Package repo stores user accounts
package repo

import (
	"context"

	"paysystem/internal/modkit/repokit"
	"paysystem/internal/platform/store"
	"paysystem/internal/services/api/auth/domain"

	"github.com/google/uuid"
)

// Repo is the persistence surface for accounts
type Repo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	ByEmail(ctx context.Context, email string) (domain.User, error)
	ByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type (
	// PG binds the account repo to postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the users table
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const userColumns = `id, name, email, password, role, created_at, updated_at`

// Create inserts u, duplicate emails surface as a unique violation on users_email_key
func (r *queries) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const sql = `
insert into users (id, name, email, password, role)
values ($1, $2, $3, $4, $5)
returning created_at, updated_at
`
	err := r.q.QueryRow(ctx, sql, u.ID, u.Name, u.Email, u.Password, u.Role).Scan(&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ByEmail finds a user by the case folded address
func (r *queries) ByEmail(ctx context.Context, email string) (domain.User, error) {
	return store.One(ctx, r.q, scanUser, `select `+userColumns+` from users where email = $1`, email)
}

// ByID finds a user by id
func (r *queries) ByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return store.One(ctx, r.q, scanUser, `select `+userColumns+` from users where id = $1`, id)
}

func scanUser(row store.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
