// Package http provides http transport for customers
package http

import (
	stdhttp "net/http"

	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/services/api/customers/domain"
	svc "paysystem/internal/services/api/customers/service"
)

// Register mounts customer endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /customers Customers customersCreate
// @Summary Register a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Customer"
// @Success 201 {object} domain.Customer "created"
// @Failure 409 {object} ErrorResponse "email or document already registered"
// @Router /customers [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(c), nil
}

// swagger:route GET /customers Customers customersList
// @Summary List customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, email or document"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} domain.Customer "ok"
// @Router /customers [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := httpkit.NewQuery(r)
	page, limit := q.Page()
	in := domain.ListInput{Search: q.String("search"), Page: page, Limit: limit}
	if err := q.Err(); err != nil {
		return nil, err
	}
	items, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Paged(items, total, page, limit), nil
}

// swagger:route GET /customers/{id} Customers customersGet
// @Summary Get a customer
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer id"
// @Success 200 {object} domain.Customer "ok"
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// swagger:route PATCH /customers/{id} Customers customersUpdate
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer id"
// @Param payload body domain.UpdateInput true "Fields to change"
// @Success 200 {object} domain.Customer "ok"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /customers/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

// swagger:route DELETE /customers/{id} Customers customersDelete
// @Summary Remove a customer without charges
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer id"
// @Success 200 {object} domain.Removed "ok"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "customer has charges"
// @Router /customers/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Delete(r.Context(), id)
}
