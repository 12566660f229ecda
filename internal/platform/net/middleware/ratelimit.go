package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	perr "paysystem/internal/platform/errors"

	"golang.org/x/time/rate"
)

// RateStore keeps one token bucket per client key
type RateStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type rateEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateStore builds a store refilling rps tokens per second up to burst
func NewRateStore(rps float64, burst int) *RateStore {
	if burst < 1 {
		burst = 1
	}
	return &RateStore{
		entries: make(map[string]*rateEntry),
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		now:     time.Now,
	}
}

// Allow takes a token for key and reports whether one was available
func (s *RateStore) Allow(key string) bool {
	now := s.now()
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &rateEntry{lim: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	s.mu.Unlock()
	return e.lim.AllowN(now, 1)
}

// Cleanup drops buckets idle for longer than the idle TTL
func (s *RateStore) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// Len returns the number of tracked keys
func (s *RateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor runs Cleanup every interval until ctx ends
func (s *RateStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// ClientIP keys by RemoteAddr, put RealIP in front to honor X-Forwarded-For
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	if addr != "" {
		return addr
	}
	return "unknown"
}

// RateLimit rejects with 429 once the caller's bucket is empty
func RateLimit(s *RateStore, key func(*http.Request) string) func(http.Handler) http.Handler {
	if key == nil {
		key = ClientIP
	}
	retry := "1"
	if s.limit > 0 && float64(s.limit) < 1 {
		retry = strconv.Itoa(int(1/float64(s.limit) + 0.5))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.Allow(key(r)) {
				w.Header().Set("Retry-After", retry)
				writeErr(w, r, perr.TooManyRequestsf("too many requests, try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
