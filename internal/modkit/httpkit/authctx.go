package httpkit

import (
	"net/http"
	"strings"

	perrs "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// MustUser returns the authenticated user id or panics
// only use on routes protected by the auth middleware
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// Principal returns the authenticated caller
func Principal(r *http.Request) (pnet.Principal, error) {
	p, ok := pnet.PrincipalFrom(r.Context())
	if !ok {
		return pnet.Principal{}, perrs.Unauthorizedf("missing bearer token")
	}
	return p, nil
}

// JWT returns the raw bearer token from the Authorization header
// the scheme is matched case insensitively
func JWT(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const scheme = "bearer"
	if len(s) <= len(scheme) || !strings.EqualFold(s[:len(scheme)], scheme) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	rest := s[len(scheme):]
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(rest)
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
