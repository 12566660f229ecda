package httpkit

import (
	"net/http"

	perrs "paysystem/internal/platform/errors"
	phttp "paysystem/internal/platform/net/http"

	"github.com/google/uuid"
)

// UUIDParam parses a path parameter as a UUID, failures are 400 on that field
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(phttp.Param(r, name))
	if err != nil {
		return uuid.Nil, perrs.WithField(perrs.Validationf("%s must be a valid UUID", name), name)
	}
	return id, nil
}
