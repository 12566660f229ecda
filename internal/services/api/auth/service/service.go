// Package service contains account workflows
package service

import (
	"context"

	"paysystem/internal/core/normalize"
	"paysystem/internal/modkit/repokit"
	perr "paysystem/internal/platform/errors"
	"paysystem/internal/services/api/auth/domain"
	"paysystem/internal/services/api/auth/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor for new passwords
var hashCost = bcrypt.DefaultCost

// invalidCredentials is the single answer for unknown emails and wrong passwords
const invalidCredentials = "invalid email or password"

// Service defines the auth service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the auth service
type Svc struct {
	Repo   repo.Repo
	tokens *Tokens
	newID  func() uuid.UUID
}

// New constructs an auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], tokens *Tokens) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if tokens == nil {
		panic("auth.Service requires a token signer")
	}
	return &Svc{Repo: binder.Bind(db), tokens: tokens, newID: uuid.New}
}

// Register creates an administrator account and signs a token for it
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.Session, error) {
	email := normalize.Email(in.Email)
	if _, err := s.Repo.ByEmail(ctx, email); err == nil {
		return domain.Session{}, perr.WithField(perr.Conflictf("email already registered"), "email")
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.Session{}, perr.FromPostgres(err, "lookup user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return domain.Session{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}
	u, err := s.Repo.Create(ctx, domain.User{
		ID:       s.newID(),
		Name:     normalize.Text(in.Name),
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		// lost a race with a concurrent register
		if perr.IsDuplicateKey(err) {
			return domain.Session{}, perr.WithField(perr.Conflictf("email already registered"), "email")
		}
		return domain.Session{}, perr.FromPostgres(err, "create user")
	}
	return s.session(u)
}

// Login checks credentials and signs a token
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.Session, error) {
	u, err := s.Repo.ByEmail(ctx, normalize.Email(in.Email))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Session{}, perr.Unauthorizedf(invalidCredentials)
		}
		return domain.Session{}, perr.FromPostgres(err, "lookup user")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return domain.Session{}, perr.Unauthorizedf(invalidCredentials)
	}
	return s.session(u)
}

// Me returns the profile of the authenticated user
func (s *Svc) Me(ctx context.Context, userID string) (domain.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.Profile{}, perr.NotFoundf("user not found")
	}
	u, err := s.Repo.ByID(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Profile{}, perr.NotFoundf("user not found")
		}
		return domain.Profile{}, perr.FromPostgres(err, "load user")
	}
	return u.Profile(), nil
}

func (s *Svc) session(u domain.User) (domain.Session, error) {
	tok, err := s.tokens.Issue(u)
	if err != nil {
		return domain.Session{}, perr.Wrap(err, perr.ErrorCodeUnknown, "sign token")
	}
	return domain.Session{AccessToken: tok, User: u.Summary()}, nil
}
