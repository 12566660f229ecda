// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/platform/net/middleware"
	"paysystem/internal/services/api/auth/domain"
	svc "paysystem/internal/services/api/auth/service"
)

// Register mounts auth endpoints, /me sits behind bearer auth
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me", h.me)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /auth/register Auth authRegister
// @Summary Create an administrator account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Account"
// @Success 201 {object} domain.Session "created"
// @Failure 409 {object} ErrorResponse "email already registered"
// @Router /auth/register [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	out, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// swagger:route POST /auth/login Auth authLogin
// @Summary Exchange credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.Session "ok"
// @Failure 401 {object} ErrorResponse "invalid email or password"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// swagger:route GET /auth/me Auth authMe
// @Summary Profile of the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile "ok"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "user not found"
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}
