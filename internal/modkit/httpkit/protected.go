package httpkit

import (
	"net/http"

	"paysystem/internal/platform/net/middleware"
)

// RoleAdmin is the role allowed through AdminOnly
const RoleAdmin = "ADMIN"

// AdminOnly rejects callers that are not administrators
// it must be mounted after Auth
var AdminOnly = middleware.RequireRole("access denied: administrators only", RoleAdmin)

// Protected groups routes under bearer auth followed by guards
func Protected(r Router, p middleware.AuthPort, fn func(Router), guards ...func(http.Handler) http.Handler) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		if len(guards) > 0 {
			gr.Use(guards...)
		}
		fn(gr)
	})
}
