package module

import (
	"paysystem/internal/platform/net/middleware"
	"paysystem/internal/services/api/auth/domain"
)

// Ports is what the auth module offers other modules
type Ports struct {
	// Auth authenticates bearer requests for protected modules
	Auth middleware.AuthPort
	// Tokens verifies raw access tokens
	Tokens domain.TokenPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Auth: m.port, Tokens: m.tokens} }
