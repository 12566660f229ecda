// Package http provides http transport for charges
package http

import (
	stdhttp "net/http"

	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/services/api/charges/domain"
	svc "paysystem/internal/services/api/charges/service"
)

// Register mounts charge endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/customer/{id}", h.byCustomer)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
	httpkit.PatchJSON[domain.StatusInput](r, "/{id}/status", h.status)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /charges Charges chargesCreate
// @Summary Open a charge
// @Tags Charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CreateInput true "Charge"
// @Success 201 {object} domain.Charge "created"
// @Failure 400 {object} ErrorResponse "invalid payload or duplicated idempotency key"
// @Failure 404 {object} ErrorResponse "customer not found"
// @Router /charges [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(c), nil
}

// swagger:route GET /charges Charges chargesList
// @Summary List charges
// @Tags Charges
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param customer_id query string false "Customer id"
// @Param status query string false "Status" Enums(PENDING, PAID, FAILED, CANCELED, EXPIRED)
// @Param payment_method query string false "Payment method" Enums(PIX, CREDIT_CARD, BANK_SLIP)
// @Param min_amount query number false "Lowest amount"
// @Param max_amount query number false "Highest amount"
// @Param start_date query string false "Created at or after (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Created at or before (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Charge "ok"
// @Failure 400 {object} ErrorResponse
// @Router /charges [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := httpkit.NewQuery(r)
	page, limit := q.Page()
	in := domain.ListInput{
		Page:       page,
		Limit:      limit,
		CustomerID: q.UUID("customer_id"),
		Status: domain.Status(q.OneOf("status",
			string(domain.StatusPending), string(domain.StatusPaid), string(domain.StatusFailed),
			string(domain.StatusCanceled), string(domain.StatusExpired))),
		PaymentMethod: domain.PaymentMethod(q.OneOf("payment_method",
			string(domain.MethodPIX), string(domain.MethodCreditCard), string(domain.MethodBankSlip))),
		MinAmount: q.Decimal("min_amount"),
		MaxAmount: q.Decimal("max_amount"),
		Start:     q.Time("start_date"),
		End:       q.EndTime("end_date"),
	}
	if err := q.Err(); err != nil {
		return nil, err
	}
	items, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Paged(items, total, page, limit), nil
}

// swagger:route GET /charges/customer/{id} Charges chargesByCustomer
// @Summary List every charge of a customer
// @Tags Charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer id"
// @Success 200 {object} domain.CustomerCharges "ok"
// @Failure 404 {object} ErrorResponse "customer not found"
// @Router /charges/customer/{id} [get]
func (h *handlers) byCustomer(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.ByCustomer(r.Context(), id)
}

// swagger:route GET /charges/{id} Charges chargesGet
// @Summary Get a charge
// @Tags Charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge id"
// @Success 200 {object} domain.Charge "ok"
// @Failure 404 {object} ErrorResponse
// @Router /charges/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// swagger:route PATCH /charges/{id} Charges chargesUpdate
// @Summary Update a charge
// @Tags Charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge id"
// @Param payload body domain.UpdateInput true "Fields to change"
// @Success 200 {object} domain.Charge "ok"
// @Failure 404 {object} ErrorResponse
// @Router /charges/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

// swagger:route DELETE /charges/{id} Charges chargesDelete
// @Summary Remove a charge
// @Tags Charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge id"
// @Success 200 {object} domain.Removed "ok"
// @Failure 404 {object} ErrorResponse
// @Router /charges/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Delete(r.Context(), id)
}

// swagger:route PATCH /charges/{id}/status Charges chargesStatus
// @Summary Move a charge to another status
// @Tags Charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge id"
// @Param payload body domain.StatusInput true "New status"
// @Success 200 {object} domain.Charge "ok"
// @Failure 400 {object} ErrorResponse "charge already has this status"
// @Failure 404 {object} ErrorResponse
// @Router /charges/{id}/status [patch]
func (h *handlers) status(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateStatus(r.Context(), id, in)
}
