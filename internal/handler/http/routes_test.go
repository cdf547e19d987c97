// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubhamkr/streamtube-backend/models"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: "user-1"}, nil
		},
	}
	return newTestHandler(t, auth, nil).Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/register"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/refresh-token"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodPost, "/api/v1/users/change-password"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodPatch, "/api/v1/users/profile"},
		{http.MethodPatch, "/api/v1/users/avatar"},
		{http.MethodPatch, "/api/v1/users/cover-image"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodGet, "/api/v1/users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → not 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodPost, "/api/v1/users/unknown"},
		{http.MethodGet, "/totally/wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		addAuth bool // protected routes need a token to reach MethodNotAllowed
	}{
		{
			name:   "GET on /api/v1/users/register (POST only)",
			method: http.MethodGet,
			path:   "/api/v1/users/register",
		},
		{
			name:   "GET on /api/v1/users/login (POST only)",
			method: http.MethodGet,
			path:   "/api/v1/users/login",
		},
		{
			name:    "DELETE on /api/v1/users/me (GET only)",
			method:  http.MethodDelete,
			path:    "/api/v1/users/me",
			addAuth: true,
		},
		{
			name:    "POST on /api/v1/users/profile (PATCH only)",
			method:  http.MethodPost,
			path:    "/api/v1/users/profile",
			addAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"CheckHTTPMethod should replace 405 with 404")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
