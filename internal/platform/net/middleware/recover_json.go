package middleware

import (
	"net/http"
	"runtime/debug"

	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/logger"
	pnet "paysystem/internal/platform/net"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so the server can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			writeErr(w, r, perr.PanicErrf("internal server error"))
		}()
		next.ServeHTTP(w, r)
	})
}
