package service

import (
	"errors"
	"fmt"
	"time"

	"paysystem/internal/platform/config"
	pnet "paysystem/internal/platform/net"
	"paysystem/internal/services/api/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig controls access token signing
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// TokenConfigFromEnv reads JWT_SECRET (required), JWT_TTL and JWT_ISSUER under c's prefix
func TokenConfigFromEnv(c config.Conf) TokenConfig {
	return TokenConfig{
		Secret: []byte(c.MustString("JWT_SECRET")),
		TTL:    c.MayDuration("JWT_TTL", 24*time.Hour),
		Issuer: c.MayString("JWT_ISSUER", "paysystem"),
	}
}

// Claims is the access token payload
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access tokens
type Tokens struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokens validates cfg and returns a signer
func NewTokens(cfg TokenConfig) (*Tokens, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("auth: empty jwt secret")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("auth: jwt ttl must be positive, got %s", cfg.TTL)
	}
	return &Tokens{cfg: cfg, now: time.Now}, nil
}

// Issue signs a token for u
func (t *Tokens) Issue(u domain.User) (string, error) {
	now := t.now()
	claims := Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			Issuer:    t.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.Secret)
}

// Verify checks signature, algorithm, issuer and expiry and returns the caller
func (t *Tokens) Verify(raw string) (pnet.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return t.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return pnet.Principal{}, err
	}
	if claims.Subject == "" {
		return pnet.Principal{}, errors.New("auth: token without subject")
	}
	return pnet.Principal{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
