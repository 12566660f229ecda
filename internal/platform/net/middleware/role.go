package middleware

import (
	"net/http"

	perr "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
)

// RequireRole allows only principals with one of roles
// it must run after Auth, a missing principal is treated as forbidden
func RequireRole(deniedMsg string, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			who, ok := pnet.PrincipalFrom(r.Context())
			if !ok {
				writeErr(w, r, perr.Forbiddenf("user not authenticated"))
				return
			}
			if _, ok := allowed[who.Role]; !ok {
				writeErr(w, r, perr.Forbiddenf("%s", deniedMsg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
