package module

import (
	"context"
	stdhttp "net/http"
	"testing"

	modkit "paysystem/internal/modkit"
	"paysystem/internal/modkit/httpkit"
	pnet "paysystem/internal/platform/net"
	"paysystem/internal/platform/net/http/httptestkit"
	"paysystem/internal/platform/store/storetest"
	"paysystem/internal/platform/testkit"
	audit "paysystem/internal/services/api/audit/domain"
	customers "paysystem/internal/services/api/customers/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allCustomers struct{}

func (allCustomers) Exists(context.Context, uuid.UUID) error { return nil }

type customerPorts struct{ Exists customers.ExistsPort }

type auditPorts struct{ Recorder audit.RecorderPort }

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, audit.Entry) error { return nil }

func TestNew_RequiresCustomers(t *testing.T) {
	testkit.MustPanic(t, func() { New(modkit.Deps{Log: zerolog.Nop(), PG: storetest.New()}) })
}

func TestMountRoutes(t *testing.T) {
	db := storetest.New().Return("select count(*)", storetest.Result{Rows: [][]any{{0}}})
	admin := httpkit.NewPortFunc(func(string) (pnet.Principal, error) {
		return pnet.Principal{UserID: "u-1", Role: "ADMIN"}, nil
	})
	m := New(modkit.Deps{Log: zerolog.Nop(), PG: db},
		modkit.WithPorts(customerPorts{Exists: allCustomers{}}, auditPorts{Recorder: nopRecorder{}}),
		modkit.WithAuth(admin, httpkit.AdminOnly),
	)
	assert.Equal(t, "charges", m.Name())
	assert.Equal(t, "/charges", m.(*Module).Prefix())

	r := httptestkit.Router()
	m.MountRoutes(r)

	rr, env := httptestkit.Do(t, r.Mux(), "GET", "/charges", nil, httptestkit.Header("Authorization", "Bearer x"))
	require.Equal(t, stdhttp.StatusOK, rr.Code, env.Error)
	assert.Equal(t, 0, env.Page.Total)
	assert.Positive(t, db.Ran("order by c.created_at desc"))

	rr, _ = httptestkit.Do(t, r.Mux(), "GET", "/charges", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, rr.Code)
}
