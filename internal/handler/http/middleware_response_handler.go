// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package http

import "net/http"

// responseWriter decorates an [http.ResponseWriter] so withLogging can report
// the status code and body size after the downstream handler returns, without
// buffering the response.
//
// WriteHeader is forwarded to the underlying writer at most once; later calls
// are ignored, matching the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool

	// size accumulates the bytes written across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly recording an HTTP 200
// if no header was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
