package adapter

import "errors"

// Errors mapped from upstream HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("upstream rejected the request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream resource not found")
	ErrConflict            = errors.New("upstream conflict")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrInternalServerError = errors.New("upstream internal server error")
)

var (
	// ErrUnavailable is returned when the upstream cannot be reached at all.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrEmptyResponse is returned when the upstream answers with no content.
	ErrEmptyResponse = errors.New("upstream returned an empty response")
)
