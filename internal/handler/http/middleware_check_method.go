// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. For an
// account API that is an existence oracle: probing POST /api/v1/users/login
// with GET would confirm the route is there. This handler downgrades that case
// to 404, so an unsupported method looks the same as an unknown path. Requests
// whose method is actually registered fall through to the router's normal
// pipeline.
//
// Route lookup compares each registered pattern against the raw request path;
// parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
