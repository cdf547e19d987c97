package adapter

import "errors"

// Transport-agnostic sentinel errors mapped from image-host HTTP responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("image host rejected credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyLocalPath is returned by Upload when no local file path is
	// provided.
	ErrEmptyLocalPath = errors.New("empty local file path")

	// ErrEmptyUploadURL is returned when the image host answers 2xx but the
	// response body carries no usable URL.
	ErrEmptyUploadURL = errors.New("image host returned no url")
)
