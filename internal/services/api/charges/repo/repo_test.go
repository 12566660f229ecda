package repo

import (
	"context"
	"testing"
	"time"

	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/store/storetest"
	"paysystem/internal/services/api/charges/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 10, 24, 0, 11, 33, 0, time.UTC)

func row(id, customer uuid.UUID, status string, meta []byte) []any {
	return []any{
		id, customer, decimal.RequireFromString("150.75"), "BRL", "monthly", status, "PIX",
		"key-1", nil, nil, nil, meta,
		at, at, nil,
		customer, "Maria", "m@x.com", "52998224725", nil,
	}
}

func TestCreate_PassesNullMetadata(t *testing.T) {
	db := storetest.New().Return("insert into charges", storetest.Result{Rows: [][]any{{at, at}}})
	c := domain.Charge{
		ID: uuid.New(), CustomerID: uuid.New(), Amount: decimal.RequireFromString("10.00"),
		Currency: "BRL", Status: domain.StatusPending, PaymentMethod: domain.MethodPIX, IdempotencyKey: "k",
	}

	out, err := NewPG().Bind(db).Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, at, out.CreatedAt)
	call, _ := db.Last("insert into charges")
	assert.Equal(t, "PENDING", call.Args[5])
	assert.Nil(t, call.Args[9])
}

func TestByID_ScansCustomerSummary(t *testing.T) {
	id, cust := uuid.New(), uuid.New()
	db := storetest.New().Return("where c.id = $1", storetest.Result{Rows: [][]any{row(id, cust, "PAID", []byte(`{"plan":"gold"}`))}})

	c, err := NewPG().Bind(db).ByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, c.Status)
	assert.Equal(t, "150.75", c.Amount.StringFixed(2))
	require.NotNil(t, c.Customer)
	assert.Equal(t, cust, c.Customer.ID)
	assert.Equal(t, "Maria", c.Customer.Name)
	assert.JSONEq(t, `{"plan":"gold"}`, string(c.Metadata))
	require.NotNil(t, c.Description)
	assert.Nil(t, c.PaidAt)
}

func TestByID_Missing(t *testing.T) {
	_, err := NewPG().Bind(storetest.New()).ByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, perr.ErrNotFound)
}

func TestListAndCount_Filters(t *testing.T) {
	cust := uuid.New()
	min := decimal.RequireFromString("10")
	db := storetest.New().
		Return("select count(*)", storetest.Result{Rows: [][]any{{1}}}).
		Return("order by c.created_at desc", storetest.Result{Rows: [][]any{row(uuid.New(), cust, "PENDING", nil)}})
	r := NewPG().Bind(db)
	in := domain.ListInput{Page: 2, Limit: 5, CustomerID: &cust, Status: domain.StatusPending, MinAmount: &min}

	items, err := r.List(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Metadata)
	call, _ := db.Last("order by c.created_at desc")
	require.Len(t, call.Args, 9)
	assert.Equal(t, &cust, call.Args[0])
	assert.Equal(t, "PENDING", call.Args[1])
	assert.Equal(t, "", call.Args[2])
	assert.Equal(t, 5, call.Args[7])
	assert.Equal(t, 5, call.Args[8])

	n, err := r.Count(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSetStatus(t *testing.T) {
	id, cust := uuid.New(), uuid.New()
	db := storetest.New().Return("paid_at = case", storetest.Result{Rows: [][]any{row(id, cust, "PAID", nil)}})

	c, err := NewPG().Bind(db).SetStatus(context.Background(), id, domain.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, c.Status)
	call, _ := db.Last("paid_at = case")
	assert.Equal(t, []any{id, "PAID"}, call.Args)
}

func TestSoftDelete(t *testing.T) {
	db := storetest.New().Return("set deleted_at = now()", storetest.Result{Affected: 1})
	require.NoError(t, NewPG().Bind(db).SoftDelete(context.Background(), uuid.New()))
	assert.ErrorIs(t, NewPG().Bind(storetest.New()).SoftDelete(context.Background(), uuid.New()), perr.ErrNotFound)
}
