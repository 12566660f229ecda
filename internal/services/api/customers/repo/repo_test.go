package repo

import (
	"context"
	"testing"
	"time"

	perr "paysystem/internal/platform/errors"
	str "paysystem/internal/platform/strings"
	"paysystem/internal/platform/store/storetest"
	"paysystem/internal/services/api/customers/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)

func row(id uuid.UUID, email string) []any {
	return []any{id, "Maria", email, "52998224725", nil, at, at, nil}
}

func TestCreate(t *testing.T) {
	db := storetest.New().Return("insert into customers", storetest.Result{Rows: [][]any{{at, at}}})
	c := domain.Customer{ID: uuid.New(), Name: "Maria", Email: "m@x.com", Document: str.Ptr("52998224725")}

	out, err := NewPG().Bind(db).Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, at, out.CreatedAt)
	call, _ := db.Last("insert into customers")
	assert.Equal(t, c.Document, call.Args[3])
}

func TestByID_ScansNullableColumns(t *testing.T) {
	id := uuid.New()
	db := storetest.New().Return("where id = $1 and deleted_at is null", storetest.Result{Rows: [][]any{row(id, "m@x.com")}})

	c, err := NewPG().Bind(db).ByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, c.Document)
	assert.Equal(t, "52998224725", *c.Document)
	assert.Nil(t, c.Phone)
	assert.Nil(t, c.DeletedAt)
}

func TestConflict_NotFoundMeansFree(t *testing.T) {
	_, err := NewPG().Bind(storetest.New()).Conflict(context.Background(), "m@x.com", nil, nil)
	assert.ErrorIs(t, err, perr.ErrNotFound)
}

func TestListAndCount(t *testing.T) {
	db := storetest.New().
		Return("select count(*) from customers", storetest.Result{Rows: [][]any{{2}}}).
		Return("order by created_at desc", storetest.Result{Rows: [][]any{row(uuid.New(), "a@x.com"), row(uuid.New(), "b@x.com")}})
	r := NewPG().Bind(db)
	in := domain.ListInput{Search: "mar", Page: 3, Limit: 10}

	items, err := r.List(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	call, _ := db.Last("order by created_at desc")
	assert.Equal(t, []any{"mar", 10, 20}, call.Args)

	n, err := r.Count(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSoftDelete(t *testing.T) {
	db := storetest.New().Return("set deleted_at = now()", storetest.Result{Affected: 1})
	require.NoError(t, NewPG().Bind(db).SoftDelete(context.Background(), uuid.New()))

	missing := storetest.New()
	assert.ErrorIs(t, NewPG().Bind(missing).SoftDelete(context.Background(), uuid.New()), perr.ErrNotFound)
}

func TestCountCharges(t *testing.T) {
	db := storetest.New().Return("from charges", storetest.Result{Rows: [][]any{{4}}})
	n, err := NewPG().Bind(db).CountCharges(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
