// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newCheckMethodRouter wires a small route surface resembling the account API
// without going through Handler.Init, so no services or logger are needed.
func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("logged in"))
	})
	router.Get("/api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Patch("/api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/v1/users/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func checkMethodStatus(router *chi.Mux, method, path string) int {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Code
}

func TestCheckHTTPMethod_RegisteredMethodsPassThrough(t *testing.T) {
	router := newCheckMethodRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodPost, "/api/v1/users/login", http.StatusOK},
		{http.MethodGet, "/api/v1/users/me", http.StatusOK},
		{http.MethodPatch, "/api/v1/users/me", http.StatusOK},
		{http.MethodPost, "/api/v1/users/logout", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, checkMethodStatus(router, tt.method, tt.path))
		})
	}
}

func TestCheckHTTPMethod_UnregisteredMethodHidesRoute(t *testing.T) {
	// A wrong method must not betray that the path exists: 404, never 405.
	router := newCheckMethodRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/login"},
		{http.MethodDelete, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/me"},
		{http.MethodPut, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			code := checkMethodStatus(router, tt.method, tt.path)
			assert.Equal(t, http.StatusNotFound, code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, code)
		})
	}
}

func TestCheckHTTPMethod_UnknownPathStays404(t *testing.T) {
	router := newCheckMethodRouter()

	assert.Equal(t, http.StatusNotFound,
		checkMethodStatus(router, http.MethodGet, "/api/v1/users/nonexistent"))
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged in", rr.Body.String())
}

func TestCheckHTTPMethod_SingleMethodRoute(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/only-get", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	assert.Equal(t, http.StatusOK, checkMethodStatus(router, http.MethodGet, "/only-get"))

	for _, method := range []string{
		http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions,
	} {
		t.Run("wrong: "+method, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, checkMethodStatus(router, method, "/only-get"))
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := newCheckMethodRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			done <- checkMethodStatus(router, method, "/api/v1/users/me")
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.True(t, code == http.StatusOK || code == http.StatusNotFound,
			"unexpected status code: %d", code)
	}
}
