// Package httptestkit drives handlers mounted on the platform router in tests
package httptestkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
	phttp "paysystem/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// Env is the response envelope with data left raw for typed decoding
type Env struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
	Page       *phttp.Page     `json:"page"`
}

// Decode unmarshals Data into v
func (e Env) Decode(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(e.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", e.Data, err)
	}
}

// Router returns a fresh chi backed router
func Router() phttp.Router { return phttp.AdaptChi(chi.NewRouter()) }

// Option mutates the outgoing request
type Option func(*http.Request)

// As attaches p to the request context, the way the auth middleware would
func As(p pnet.Principal) Option {
	return func(r *http.Request) { *r = *r.WithContext(pnet.WithPrincipal(r.Context(), p)) }
}

// Header sets one request header
func Header(k, v string) Option {
	return func(r *http.Request) { r.Header.Set(k, v) }
}

// Do sends method path with body encoded as JSON unless it is a string
func Do(t *testing.T, h http.Handler, method, path string, body any, opts ...Option) (*httptest.ResponseRecorder, Env) {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env Env
	if rr.Code != http.StatusNoContent && rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope %q: %v", rr.Body.String(), err)
		}
	}
	return rr, env
}
