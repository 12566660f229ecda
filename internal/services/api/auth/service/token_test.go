package service

import (
	"testing"
	"time"

	"paysystem/internal/services/api/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T, secret string, ttl time.Duration) *Tokens {
	t.Helper()
	tk, err := NewTokens(TokenConfig{Secret: []byte(secret), TTL: ttl, Issuer: "paysystem"})
	require.NoError(t, err)
	return tk
}

func TestNewTokens_RejectsBadConfig(t *testing.T) {
	_, err := NewTokens(TokenConfig{TTL: time.Hour})
	assert.Error(t, err)
	_, err = NewTokens(TokenConfig{Secret: []byte("s")})
	assert.Error(t, err)
}

func TestTokens_RoundTrip(t *testing.T) {
	tk := newTokens(t, "secret", time.Hour)
	u := domain.User{ID: uuid.New(), Email: "a@b.com", Role: domain.RoleAdmin}

	raw, err := tk.Issue(u)
	require.NoError(t, err)

	who, err := tk.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), who.UserID)
	assert.Equal(t, "a@b.com", who.Email)
	assert.Equal(t, domain.RoleAdmin, who.Role)
}

func TestTokens_ClaimsShape(t *testing.T) {
	tk := newTokens(t, "secret", 2*time.Hour)
	at := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)
	tk.now = func() time.Time { return at }

	raw, err := tk.Issue(domain.User{ID: uuid.New(), Email: "a@b.com", Role: domain.RoleUser})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(raw, claims)
	require.NoError(t, err)
	for _, k := range []string{"sub", "email", "role", "iss", "iat", "exp"} {
		assert.Contains(t, claims, k)
	}
	assert.Equal(t, "paysystem", claims["iss"])
	assert.EqualValues(t, at.Add(2*time.Hour).Unix(), claims["exp"])
}

func TestTokens_Rejects(t *testing.T) {
	tk := newTokens(t, "secret", time.Hour)
	u := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	other := newTokens(t, "other", time.Hour)
	forged, _ := other.Issue(u)

	expiredSigner := newTokens(t, "secret", time.Hour)
	expiredSigner.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredSigner.Issue(u)

	foreign, err := NewTokens(TokenConfig{Secret: []byte("secret"), TTL: time.Hour, Issuer: "someone-else"})
	require.NoError(t, err)
	wrongIss, _ := foreign.Issue(u)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, raw := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": forged,
		"expired":      expired,
		"wrong issuer": wrongIss,
		"alg none":     none,
	} {
		_, err := tk.Verify(raw)
		assert.Error(t, err, name)
	}
}
