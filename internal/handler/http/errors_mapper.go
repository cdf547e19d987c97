package http

import (
	"errors"
	"net/http"

	"github.com/shubhamkr/streamtube-backend/internal/adapter"
	"github.com/shubhamkr/streamtube-backend/internal/service"
	"github.com/shubhamkr/streamtube-backend/internal/store"
	"github.com/shubhamkr/streamtube-backend/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAvatarRequired:          http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRefreshTokenReused:      http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrUploadFailed:            http.StatusBadGateway,

	adapter.ErrUnauthorized: http.StatusBadGateway,
	adapter.ErrBadGateway:   http.StatusBadGateway,

	store.ErrUserAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrRefreshTokenMismatch: http.StatusUnauthorized,
	store.ErrNoFieldsToUpdate:     http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeMappedError resolves err against errorStatusMap and writes the failure
// envelope. Server-side failures hide their detail; client-addressable ones
// carry the sentinel text so callers can tell what to fix.
func writeMappedError(w http.ResponseWriter, err error, message string) {
	status, detail := statusFromError(err)
	if status >= http.StatusInternalServerError {
		utils.WriteError(w, status, message)
		return
	}
	utils.WriteError(w, status, message, detail)
}

// writeLoginError collapses "no such user" and "wrong password" into a single
// 401 so that login responses do not reveal which accounts exist.
func writeLoginError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword) {
		utils.WriteError(w, http.StatusUnauthorized, "invalid login/password")
		return
	}
	writeMappedError(w, err, "user login failed")
}
