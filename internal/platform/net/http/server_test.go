package http

import (
	"context"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paysystem/internal/platform/config"
	kit "paysystem/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestServer_RoutesThroughAdapter(t *testing.T) {
	t.Setenv("SRV_TEST_PORT", "18080")
	s := NewServer(config.New().Prefix("SRV_TEST_"))
	if s.Addr() != ":18080" {
		t.Fatalf("addr = %q", s.Addr())
	}
	s.Router().Route("/api/v1", func(api Router) {
		api.Group(func(g Router) {
			g.Get("/customers/{id}", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
				_, _ = w.Write([]byte(Param(r, "id")))
			})
		})
	})
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/customers/abc", nil))
	if rr.Code != stdhttp.StatusOK || rr.Body.String() != "abc" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	kit.Serial(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	kit.Swap(t, &listen, func(string, string) (net.Listener, error) { return ln, nil })

	s := NewServer(config.New().Prefix("SRV_RUN_"), func(m *chi.Mux) {
		m.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("pong")) })
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Second) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	m := chi.NewRouter()
	MountProfiler(AdaptChi(m), "/debug", false)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rr.Code)
	}

	m2 := chi.NewRouter()
	MountProfiler(AdaptChi(m2), "/debug", true)
	rr = httptest.NewRecorder()
	m2.ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("enabled profiler = %d", rr.Code)
	}
}
