package middleware

import (
	"net/http"

	"paysystem/internal/platform/logger"
	pnet "paysystem/internal/platform/net"
	phttp "paysystem/internal/platform/net/http"
)

// AuthPort turns a request into the authenticated principal
type AuthPort interface {
	Parse(r *http.Request) (pnet.Principal, error)
}

// Auth rejects requests the port cannot authenticate and stores the principal on the context
// a nil port lets every request through
func Auth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			who, err := p.Parse(r)
			if err != nil {
				writeErr(w, r, err)
				return
			}
			ctx := pnet.WithPrincipal(r.Context(), who)
			ctx = logger.WithRequest(ctx, "", who.UserID)
			noteUser(ctx, who.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, body := phttp.ErrorEnvelope(err, pnet.RequestID(r.Context()))
	phttp.JSON(w, status, body)
}
