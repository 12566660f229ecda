package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"paysystem/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
	// TrustProxy takes the client ip from X-Forwarded-For and X-Real-IP
	// only enable it behind a proxy that overwrites those headers
	TrustProxy bool
}

// CommonStack returns the middleware every API request goes through
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{middleware.RequestID()}
	if o.TrustProxy {
		stack = append(stack, middleware.RealIP())
	}
	return append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	)
}

// Auth wires the bearer auth middleware to a port
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p)
}

// RateLimited limits requests per client ip using a shared store
func RateLimited(s *middleware.RateStore) func(http.Handler) http.Handler {
	return middleware.RateLimit(s, middleware.ClientIP)
}
