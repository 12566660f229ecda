package service

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/testkit"
	"paysystem/internal/services/api/audit/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	saved   []domain.Entry
	total   int
	lastIn  domain.ListInput
	failure error
}

func (m *memRepo) Insert(_ context.Context, e domain.Entry) (domain.Entry, error) {
	if m.failure != nil {
		return domain.Entry{}, m.failure
	}
	e.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, e)
	return e, nil
}

func (m *memRepo) List(_ context.Context, in domain.ListInput) ([]domain.Entry, error) {
	m.lastIn = in
	return m.saved, m.failure
}

func (m *memRepo) Count(context.Context, domain.ListInput) (int, error) { return m.total, m.failure }

func newSvc(r *memRepo) *Svc { return New(r, zerolog.Nop()) }

func TestNew_PanicsWithoutRepo(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, zerolog.Nop()) })
}

func TestRecord_FillsDefaults(t *testing.T) {
	r := &memRepo{}
	err := newSvc(r).Record(context.Background(), domain.Entry{EntityType: domain.EntityCharge, Action: domain.ActionCreate})
	require.NoError(t, err)
	require.Len(t, r.saved, 1)
	assert.Equal(t, domain.NoCustomer, r.saved[0].CustomerID)
	assert.JSONEq(t, `{}`, string(r.saved[0].Details))
}

func TestRecord_RejectsIncompleteEntry(t *testing.T) {
	err := newSvc(&memRepo{}).Record(context.Background(), domain.Entry{EntityType: domain.EntityCharge})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestRecord_WrapsStoreFailure(t *testing.T) {
	cause := errors.New("down")
	err := newSvc(&memRepo{failure: cause}).Record(context.Background(), domain.NewEntry("c", domain.EntityCustomer, domain.ActionDelete, "", nil, "m"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB))
}

func TestList_DefaultsAndTotal(t *testing.T) {
	r := &memRepo{total: 12, saved: []domain.Entry{{ID: 3}, {ID: 2}}}
	items, total, err := newSvc(r).List(context.Background(), domain.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, r.lastIn.Page)
	assert.Equal(t, 10, r.lastIn.Limit)
}

func TestList_RejectsInvertedRange(t *testing.T) {
	start := time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, _, err := newSvc(&memRepo{}).List(context.Background(), domain.ListInput{Start: &start, End: &end})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}
