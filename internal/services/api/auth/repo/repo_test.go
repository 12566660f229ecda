package repo

import (
	"context"
	"testing"
	"time"

	perr "paysystem/internal/platform/errors"
	"paysystem/internal/platform/store/storetest"
	"paysystem/internal/services/api/auth/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ReturnsTimestamps(t *testing.T) {
	at := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)
	db := storetest.New().Return("insert into users", storetest.Result{Rows: [][]any{{at, at}}})
	id := uuid.New()

	u, err := NewPG().Bind(db).Create(context.Background(), domain.User{ID: id, Name: "Ana", Email: "ana@mail.com", Password: "h", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, at, u.CreatedAt)

	call, _ := db.Last("insert into users")
	assert.Equal(t, []any{id, "Ana", "ana@mail.com", "h", domain.RoleAdmin}, call.Args)
}

func TestByEmail(t *testing.T) {
	at := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	db := storetest.New().Return("where email = $1", storetest.Result{Rows: [][]any{{id, "Ana", "ana@mail.com", "h", "ADMIN", at, at}}})

	u, err := NewPG().Bind(db).ByEmail(context.Background(), "ana@mail.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ADMIN", u.Role)
}

func TestByID_Missing(t *testing.T) {
	_, err := NewPG().Bind(storetest.New()).ByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, perr.ErrNotFound)
}
