package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"testing"
	"time"

	"paysystem/internal/core/version"
	"paysystem/internal/platform/net/http/httptestkit"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

var started = time.Date(2025, 10, 21, 13, 0, 0, 0, time.UTC)

func mount(d Deps) stdhttp.Handler {
	d.ServiceName = "paysystem-api"
	d.StartedAt = started
	d.Now = func() time.Time { return started.Add(5 * time.Minute) }
	r := httptestkit.Router()
	Register(r, d)
	return r.Mux()
}

func TestHealthAndService(t *testing.T) {
	h := mount(Deps{})

	rr, env := httptestkit.Do(t, h, "GET", "/health", nil)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("health status %d", rr.Code)
	}
	var hr HealthResponse
	env.Decode(t, &hr)
	if !hr.OK || hr.Service != "paysystem-api" || hr.Now != "2025-10-21T13:05:00Z" {
		t.Fatalf("health = %+v", hr)
	}

	_, env = httptestkit.Do(t, h, "GET", "/service", nil)
	var sr ServiceResponse
	env.Decode(t, &sr)
	if sr.Uptime != 300 {
		t.Fatalf("uptime = %d", sr.Uptime)
	}
}

func TestVersion(t *testing.T) {
	_, env := httptestkit.Do(t, mount(Deps{}), "GET", "/version", nil)
	var b version.BuildInfo
	env.Decode(t, &b)
	if b != version.Info() {
		t.Fatalf("version = %+v", b)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name string
		deps Deps
		want string
	}{
		{"pg only", Deps{PG: pinger{}}, "ok"},
		{"both up", Deps{PG: pinger{}, CH: pinger{}}, "ok"},
		{"ch down", Deps{PG: pinger{}, CH: pinger{err: errors.New("refused")}}, "fail"},
		{"cannot ping", Deps{PG: struct{}{}}, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, env := httptestkit.Do(t, mount(tc.deps), "GET", "/ready", nil)
			var out ReadyResponse
			env.Decode(t, &out)
			if out.Status != tc.want {
				t.Fatalf("status = %q, want %q (%+v)", out.Status, tc.want, out.Checks)
			}
			if len(out.Checks) != 2 {
				t.Fatalf("checks = %+v", out.Checks)
			}
		})
	}
}
