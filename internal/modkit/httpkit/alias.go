package httpkit

import (
	"net/http"

	phttp "paysystem/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Page is the pagination metadata type
	Page = phttp.Page

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// Query reads and validates query string parameters
	Query = phttp.Query
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Paged returns a 200 response with items and page metadata
func Paged(items any, total, page, size int) Response {
	return phttp.Paged(items, total, page, size)
}

// NewQuery starts reading r's query string
func NewQuery(r *http.Request) *Query { return phttp.NewQuery(r) }

// Param returns a path parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
