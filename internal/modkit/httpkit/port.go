// Package httpkit is the module facing HTTP surface: routing sugar, auth wiring and response aliases
package httpkit

import (
	"net/http"

	perrs "paysystem/internal/platform/errors"
	pnet "paysystem/internal/platform/net"
)

// TokenFunc verifies a raw bearer token and returns its principal
type TokenFunc func(token string) (pnet.Principal, error)

// Port implements middleware.AuthPort on top of a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a token parser
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse reads the bearer token and hands it to the parser
// every failure is reported as a plain 401 so callers learn nothing about the token
func (p *Port) Parse(r *http.Request) (pnet.Principal, error) {
	raw, err := JWT(r)
	if err != nil {
		return pnet.Principal{}, err
	}
	if p == nil || p.parse == nil {
		return pnet.Principal{}, perrs.Unauthorizedf("invalid bearer token")
	}
	who, err := p.parse(raw)
	if err != nil || who.UserID == "" {
		return pnet.Principal{}, perrs.Unauthorizedf("invalid bearer token")
	}
	return who, nil
}
