// Package middleware holds adapters over chi plus the in house middlewares
package middleware

import (
	"context"
	"net/http"
	"time"

	"paysystem/internal/platform/logger"
	pnet "paysystem/internal/platform/net"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests at warn level once they take this long, 0 disables it
	Slow time.Duration
}

type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// requestSlot lets inner middlewares report the caller back to the access log
type requestSlot struct{ userID string }

type slotKey struct{}

func noteUser(ctx context.Context, userID string) {
	if s, ok := ctx.Value(slotKey{}).(*requestSlot); ok {
		s.userID = userID
	}
}

// AccessLogZerolog logs one line per request with request_id, user_id, status and latency
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := &requestSlot{}
			ctx := context.WithValue(r.Context(), slotKey{}, slot)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), "")
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r.WithContext(ctx))

			elapsed := time.Since(start)
			log := logger.C(logger.WithRequest(ctx, "", slot.userID))
			evt := log.Info()
			switch {
			case cw.status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			}
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Int("bytes", cw.bytes).
				Msg("request done")
		})
	}
}
