package http

import (
	"context"
	stdhttp "net/http"
	"testing"

	"paysystem/internal/modkit/httpkit"
	perr "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
	"paysystem/internal/platform/net/http/httptestkit"
	"paysystem/internal/services/api/auth/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSvc struct {
	registered domain.RegisterInput
	meID       string
}

func (f *fakeSvc) Register(_ context.Context, in domain.RegisterInput) (domain.Session, error) {
	f.registered = in
	return domain.Session{AccessToken: "tok", User: domain.UserSummary{ID: uuid.New(), Email: in.Email, Role: domain.RoleAdmin}}, nil
}

func (f *fakeSvc) Login(_ context.Context, in domain.LoginInput) (domain.Session, error) {
	if in.Password != "right-one" {
		return domain.Session{}, perr.Unauthorizedf("invalid email or password")
	}
	return domain.Session{AccessToken: "tok"}, nil
}

func (f *fakeSvc) Me(_ context.Context, id string) (domain.Profile, error) {
	f.meID = id
	return domain.Profile{UserSummary: domain.UserSummary{Email: "ana@mail.com"}}, nil
}

func mount(s *fakeSvc) stdhttp.Handler {
	r := httptestkit.Router()
	port := httpkit.NewPortFunc(func(tok string) (pnet.Principal, error) {
		if tok != "good" {
			return pnet.Principal{}, perr.Unauthorizedf("bad")
		}
		return pnet.Principal{UserID: "u-1", Role: domain.RoleAdmin}, nil
	})
	Register(r, s, port)
	return r.Mux()
}

func TestRegister_Created(t *testing.T) {
	s := &fakeSvc{}
	rr, env := httptestkit.Do(t, mount(s), "POST", "/register", map[string]string{
		"name": "Ana", "email": "ana@mail.com", "password": "secret1",
	})
	require.Equal(t, stdhttp.StatusCreated, rr.Code)

	var out domain.Session
	env.Decode(t, &out)
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, "ana@mail.com", s.registered.Email)
}

func TestRegister_Validation(t *testing.T) {
	cases := map[string]map[string]string{
		"name":     {"name": "A", "email": "ana@mail.com", "password": "secret1"},
		"email":    {"name": "Ana", "email": "nope", "password": "secret1"},
		"password": {"name": "Ana", "email": "ana@mail.com", "password": "123"},
	}
	for field, body := range cases {
		rr, env := httptestkit.Do(t, mount(&fakeSvc{}), "POST", "/register", body)
		assert.Equal(t, stdhttp.StatusBadRequest, rr.Code, field)
		assert.Equal(t, field, env.Field, field)
	}
}

func TestLogin(t *testing.T) {
	rr, _ := httptestkit.Do(t, mount(&fakeSvc{}), "POST", "/login", map[string]string{"email": "ana@mail.com", "password": "right-one"})
	assert.Equal(t, stdhttp.StatusOK, rr.Code)

	rr, env := httptestkit.Do(t, mount(&fakeSvc{}), "POST", "/login", map[string]string{"email": "ana@mail.com", "password": "wrong"})
	assert.Equal(t, stdhttp.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email or password", env.Error)
}

func TestMe_RequiresBearer(t *testing.T) {
	s := &fakeSvc{}
	rr, _ := httptestkit.Do(t, mount(s), "GET", "/me", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, rr.Code)

	rr, _ = httptestkit.Do(t, mount(s), "GET", "/me", nil, httptestkit.Header("Authorization", "Bearer bad"))
	assert.Equal(t, stdhttp.StatusUnauthorized, rr.Code)

	rr, env := httptestkit.Do(t, mount(s), "GET", "/me", nil, httptestkit.Header("Authorization", "Bearer good"))
	require.Equal(t, stdhttp.StatusOK, rr.Code)
	assert.Equal(t, "u-1", s.meID)
	assert.Contains(t, string(env.Data), "ana@mail.com")
}
