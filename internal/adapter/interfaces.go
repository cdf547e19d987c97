// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

// Package adapter provides transport-layer abstractions for communicating with
// the external image host.
//
// The primary abstraction is [FileUploader], which decouples the service layer
// from the hosting provider. The package ships an HTTP/REST implementation
// ([NewHTTPImageHostAdapter]) that posts multipart uploads to the host API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import "context"

// FileUploader uploads local files to the external image host and returns
// their public URLs. Implementations are responsible for serialisation,
// credential header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type FileUploader interface {
	// Upload sends the file at localPath to the image host and returns the
	// public URL of the stored object. The caller owns the local file and is
	// responsible for removing it afterwards.
	Upload(ctx context.Context, localPath string) (string, error)
}
