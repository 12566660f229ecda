// Package http provides http transport for the audit trail
package http

import (
	stdhttp "net/http"

	"paysystem/internal/modkit/httpkit"
	"paysystem/internal/services/api/audit/domain"
	svc "paysystem/internal/services/api/audit/service"
)

// Register mounts audit endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/logs", h.logs)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /audit/logs Audit auditLogs
// @Summary List audit logs
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param customer_id query string false "Customer id"
// @Param start_date query string false "From (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "To (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Entry "ok"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /audit/logs [get]
func (h *handlers) logs(r *stdhttp.Request) (any, error) {
	q := httpkit.NewQuery(r)
	page, limit := q.Page()
	in := domain.ListInput{
		Page:       page,
		Limit:      limit,
		CustomerID: q.String("customer_id"),
		Start:      q.Time("start_date"),
		End:        q.EndTime("end_date"),
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
