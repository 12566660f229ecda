package pg

import (
	"context"
	"errors"
	"testing"

	"paysystem/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsBadURL(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), Config{URL: "postgres://%zz"}, nil, nil)
	assert.Error(t, err)
}

func TestOpenConfiguresPool(t *testing.T) {
	testkit.Serial(t)
	var got *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		got = c
		return nil, errors.New("stop here")
	})

	mutated := false
	_, err := Open(context.Background(), Config{
		URL:      "postgres://u:p@localhost:5432/pay?sslmode=disable",
		MaxConns: 7,
		AppName:  "paysystem-api",
	}, nil, func(*pgxpool.Config) { mutated = true })
	require.EqualError(t, err, "stop here")
	require.NotNil(t, got)
	assert.Equal(t, int32(7), got.MaxConns)
	assert.Equal(t, "paysystem-api", got.ConnConfig.RuntimeParams["application_name"])
	assert.True(t, mutated)
}

func TestCloseIsNilSafe(t *testing.T) {
	t.Parallel()
	var p *PG
	p.Close()
	(&PG{}).Close()
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()
	b, err := Migrations.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "create table if not exists charges")
}
