package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"paysystem/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var nilStore *Store
	assert.Error(t, nilStore.Guard(ctx))

	assert.NoError(t, (&Store{}).Guard(ctx))

	s := &Store{PG: &fakeDB{}, CH: &fakeCH{}}
	assert.NoError(t, s.Guard(ctx))

	s = &Store{
		PG: &fakeDB{pingErr: errors.New("refused")},
		CH: &fakeCH{pingErr: errors.New("timeout")},
	}
	err := s.Guard(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pg: refused")
	assert.Contains(t, err.Error(), "ch: timeout")
}

func TestCloseClosesBackends(t *testing.T) {
	t.Parallel()
	db, c := &fakeDB{}, &fakeCH{}
	s := &Store{PG: db, CH: c}
	require.NoError(t, s.Close(context.Background()))
	assert.True(t, db.closed)
	assert.True(t, c.closed)

	assert.NoError(t, (&Store{}).Close(context.Background()))
}

func TestOpenWithNothingEnabled(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), Config{})
	require.NoError(t, err)
	assert.Nil(t, s.PG)
	assert.Nil(t, s.CH)
}

func TestOpenOptionError(t *testing.T) {
	t.Parallel()
	bad := func(*Store) error { return errors.New("bad option") }
	_, err := Open(context.Background(), Config{}, bad)
	assert.EqualError(t, err, "bad option")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@localhost:5432/pay")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "7")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")

	cfg := ConfigFromEnv("paysystem-api")
	assert.True(t, cfg.PG.Enabled)
	assert.Equal(t, int32(7), cfg.PG.MaxConns)
	assert.False(t, cfg.CH.Enabled)

	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "clickhouse://localhost:9000/default")
	cfg = ConfigFromEnv("paysystem-api")
	assert.True(t, cfg.CH.Enabled)
	assert.Equal(t, "clickhouse://localhost:9000/default", cfg.CH.URL)
}

func TestRetry(t *testing.T) {
	var slept []time.Duration
	testkit.Swap(t, &sleep, func(d time.Duration) { slept = append(slept, d) })

	calls := 0
	err := retry(context.Background(), 5, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{backoffStart, 2 * backoffStart}, slept)

	slept = nil
	err = retry(context.Background(), 6, func() error { return errors.New("down") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 6 attempts")
	assert.Len(t, slept, 5)
	assert.Equal(t, backoffCeiling, slept[len(slept)-1])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retry(ctx, 5, func() error { return errors.New("down") })
	assert.ErrorIs(t, err, context.Canceled)
}
