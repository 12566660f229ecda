package module

import (
	stdhttp "net/http"
	"testing"

	modkit "paysystem/internal/modkit"
	"paysystem/internal/platform/config"
	"paysystem/internal/platform/net/http/httptestkit"
	"paysystem/internal/platform/net/middleware"
	"paysystem/internal/platform/store/storetest"
	"paysystem/internal/platform/testkit"
	"paysystem/internal/services/api/auth/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deps() modkit.Deps {
	return modkit.Deps{Log: zerolog.Nop(), Cfg: config.New().Prefix("CORE_API_"), PG: storetest.New()}
}

func TestNew_RequiresSecret(t *testing.T) {
	t.Setenv("CORE_API_JWT_SECRET", "")
	testkit.MustPanic(t, func() { New(deps()) })
}

func TestPorts_VerifyIssuedTokens(t *testing.T) {
	t.Setenv("CORE_API_JWT_SECRET", "test-secret")
	m := New(deps()).(*Module)

	tokens := modkit.MustPortsOf[domain.TokenPort](m)
	raw, err := m.tokens.Issue(domain.User{ID: uuid.New(), Email: "a@b.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	who, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, who.Role)

	auth := modkit.MustPortsOf[middleware.AuthPort](m)
	assert.NotNil(t, auth)
}

func TestMountRoutes_RateLimited(t *testing.T) {
	t.Setenv("CORE_API_JWT_SECRET", "test-secret")
	t.Setenv("CORE_API_AUTH_RATE", "0.001")
	t.Setenv("CORE_API_AUTH_BURST", "1")
	m := New(deps()).(*Module)

	r := httptestkit.Router()
	m.MountRoutes(r)

	rr, _ := httptestkit.Do(t, r.Mux(), "POST", "/auth/login", `{}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rr.Code)

	rr, _ = httptestkit.Do(t, r.Mux(), "POST", "/auth/login", `{}`)
	assert.Equal(t, stdhttp.StatusTooManyRequests, rr.Code)
	assert.Equal(t, 1, m.Limiter().Len())
}
