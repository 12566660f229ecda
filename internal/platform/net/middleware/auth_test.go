package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
	"paysystem/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	who pnet.Principal
	err error
}

func (f fakeAuthPort) Parse(*http.Request) (pnet.Principal, error) { return f.who, f.err }

type envelope struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func ok() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	if rr := serve(middleware.Auth(nil)(ok())); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestAuth_PortErrorWritesEnvelope(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	rr := serve(middleware.Auth(fakeAuthPort{err: perr.Unauthorizedf("invalid bearer token")})(next))
	if called {
		t.Fatalf("next should not run")
	}
	env := decode(t, rr)
	if rr.Code != http.StatusUnauthorized || env.StatusCode != 401 || env.Error != "invalid bearer token" {
		t.Fatalf("got %d %+v", rr.Code, env)
	}
}

func TestAuth_StoresPrincipal(t *testing.T) {
	var got pnet.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = pnet.PrincipalFrom(r.Context())
	})
	serve(middleware.Auth(fakeAuthPort{who: pnet.Principal{UserID: "u1", Role: "ADMIN"}})(next))
	if got.UserID != "u1" || got.Role != "ADMIN" {
		t.Fatalf("principal = %+v", got)
	}
}

func TestRequireRole(t *testing.T) {
	guard := middleware.RequireRole("access denied: administrators only", "ADMIN")

	rr := serve(guard(ok()))
	if rr.Code != http.StatusForbidden || decode(t, rr).Error != "user not authenticated" {
		t.Fatalf("anonymous: %d %s", rr.Code, rr.Body.String())
	}

	viewer := middleware.Auth(fakeAuthPort{who: pnet.Principal{UserID: "u2", Role: "VIEWER"}})
	rr = serve(viewer(guard(ok())))
	if rr.Code != http.StatusForbidden || decode(t, rr).Error != "access denied: administrators only" {
		t.Fatalf("viewer: %d %s", rr.Code, rr.Body.String())
	}

	admin := middleware.Auth(fakeAuthPort{who: pnet.Principal{UserID: "u1", Role: "ADMIN"}})
	if rr = serve(admin(guard(ok()))); rr.Code != http.StatusOK {
		t.Fatalf("admin: %d", rr.Code)
	}
}

func TestRecoverJSON(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	rr := serve(middleware.RecoverJSON(boom))
	if rr.Code != http.StatusInternalServerError || decode(t, rr).Error != "internal server error" {
		t.Fatalf("got %d %s", rr.Code, rr.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://app.example"}})(ok())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/customers", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestAccessLogPassesStatus(t *testing.T) {
	h := middleware.AccessLogZerolog(middleware.AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	if rr := serve(h); rr.Code != http.StatusTeapot || rr.Body.String() != "short and stout" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}
