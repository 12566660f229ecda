package modkit

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"paysystem/internal/modkit/httpkit"
	pnet "paysystem/internal/platform/net"
	phttp "paysystem/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type greeter interface{ Greet() string }

type hello struct{}

func (hello) Greet() string { return "hi" }

type counter interface{ Count(context.Context) int }

type seven struct{}

func (seven) Count(context.Context) int { return 7 }

type bundle struct {
	Greeter greeter
	Counter counter
	hidden  greeter
}

type fakeModule struct{ ports any }

func (f fakeModule) MountRoutes(phttp.Router) {}
func (f fakeModule) Ports() any                { return f.ports }
func (f fakeModule) Name() string              { return "fake" }

func TestPortsOf(t *testing.T) {
	m := fakeModule{ports: bundle{Greeter: hello{}, Counter: seven{}}}
	if g, ok := PortsOf[greeter](m); !ok || g.Greet() != "hi" {
		t.Fatalf("greeter not found")
	}
	if b, ok := PortsOf[bundle](m); !ok || b.Counter == nil {
		t.Fatalf("bundle itself should match")
	}
	if _, ok := PortsOf[interface{ Missing() }](m); ok {
		t.Fatalf("unexpected match")
	}
	if _, ok := PortsOf[greeter](fakeModule{}); ok {
		t.Fatalf("nil ports should not match")
	}
}

func TestPortsOf_SkipsUnexported(t *testing.T) {
	m := fakeModule{ports: bundle{hidden: hello{}}}
	if _, ok := PortsOf[greeter](m); ok {
		t.Fatalf("unexported field leaked")
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustPortsOf[greeter](fakeModule{})
}

func TestPort_AcrossInjectedBundles(t *testing.T) {
	b := Build(WithPorts(struct{ Greeter greeter }{hello{}}, struct{ Counter counter }{seven{}}))
	if c, ok := Port[counter](b); !ok || c.Count(context.Background()) != 7 {
		t.Fatalf("counter not found")
	}
	if _, ok := Port[greeter](b); !ok {
		t.Fatalf("greeter not found")
	}
	if _, ok := Port[greeter](Build()); ok {
		t.Fatalf("empty build should have no ports")
	}
}

func TestBuild_MountUnderPrefixWithAuth(t *testing.T) {
	port := httpkit.NewPortFunc(func(string) (pnet.Principal, error) {
		return pnet.Principal{UserID: "u-1", Role: httpkit.RoleAdmin}, nil
	})
	var sawMw bool
	b := Build(
		WithName("things"),
		WithPrefix("/things"),
		WithMiddlewares(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
				sawMw = true
				next.ServeHTTP(w, r)
			})
		}),
		WithAuth(port, httpkit.AdminOnly),
		WithRegister(func(r phttp.Router) {
			httpkit.Get(r, "/", func(*stdhttp.Request) (any, error) { return "ok", nil })
		}),
	)
	if b.Name != "things" {
		t.Fatalf("name = %q", b.Name)
	}

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/things", nil))
	if rr.Code != stdhttp.StatusUnauthorized || !sawMw {
		t.Fatalf("no token: %d mw=%v", rr.Code, sawMw)
	}

	req := httptest.NewRequest("GET", "/things", nil)
	req.Header.Set("Authorization", "Bearer x")
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("with token: %d", rr.Code)
	}
}

func TestDeps_HasClickhouse(t *testing.T) {
	if (Deps{}).HasClickhouse() {
		t.Fatalf("zero deps should not report clickhouse")
	}
}
