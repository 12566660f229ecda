package ch

import (
	"context"
	"errors"
	"testing"

	"paysystem/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSQL(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "INSERT INTO audit_logs", insertSQL("audit_logs", nil))
	assert.Equal(t, "INSERT INTO audit_logs (id, action)", insertSQL("audit_logs", []string{"id", "action"}))
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), Config{URL: "  "})
	assert.EqualError(t, err, "ch: empty dsn")
}

func TestOpenAppliesClientInfo(t *testing.T) {
	testkit.Serial(t)
	var seen *clickhouse.Options
	testkit.Swap(t, &openConn, func(o *clickhouse.Options) (driver.Conn, error) {
		seen = o
		return nil, errors.New("dial refused")
	})

	info := BuildClientInfo("paysystem-api", "v1.0.0")
	_, err := Open(context.Background(), Config{
		URL:        "clickhouse://default:@localhost:9000/default",
		ClientInfo: info,
	})
	require.EqualError(t, err, "dial refused")
	require.NotNil(t, seen)
	assert.Equal(t, info, seen.ClientInfo)
	assert.Equal(t, []string{"localhost:9000"}, seen.Addr)
}

func TestOpenPropagatesParseErrors(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &parseDSN, func(string) (*clickhouse.Options, error) {
		return nil, errors.New("bad dsn")
	})
	_, err := Open(context.Background(), Config{URL: "clickhouse://x"})
	assert.EqualError(t, err, "bad dsn")
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()
	info := BuildClientInfo(" paysystem-api ", " v2 ")
	require.GreaterOrEqual(t, len(info.Products), 4)
	assert.Equal(t, product, info.Products[0].Name)
	assert.Equal(t, "v2", info.Products[0].Version)
	assert.Equal(t, "app", info.Products[1].Name)
	assert.Equal(t, "paysystem-api", info.Products[1].Version)
}

func TestSchemaDeclaresAuditTable(t *testing.T) {
	t.Parallel()
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS audit_logs")
	assert.Contains(t, Schema, "ENGINE = MergeTree")
}
