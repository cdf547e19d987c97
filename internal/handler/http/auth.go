package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/utils"
	"github.com/shubhamkr/streamtube-backend/models"
)

// maxUploadBytes bounds the multipart form size for image uploads.
const maxUploadBytes = 32 << 20

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"

	avatarFormField     = "avatar"
	coverImageFormField = "cover_image"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := models.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		FullName: r.FormValue("full_name"),
		Password: r.FormValue("password"),
	}

	avatarPath, err := h.saveUploadedFile(r, avatarFormField)
	if err != nil {
		log.Err(err).Msg("saving avatar upload failed")
		utils.WriteError(w, http.StatusBadRequest, "invalid avatar upload")
		return
	}
	coverPath, err := h.saveUploadedFile(r, coverImageFormField)
	if err != nil {
		log.Err(err).Msg("saving cover image upload failed")
		utils.WriteError(w, http.StatusBadRequest, "invalid cover image upload")
		return
	}
	defer h.removeTempFiles(r, avatarPath, coverPath)

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req, avatarPath, coverPath)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeMappedError(w, err, "user registration failed")
		return
	}

	log.Info().Str("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteSuccess(w, http.StatusCreated, registeredUser, "user registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	foundUser, pair, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeLoginError(w, err)
		return
	}

	log.Info().Str("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user logged in")

	setSessionCookies(w, pair)
	utils.WriteSuccess(w, http.StatusOK, models.SessionResponse{User: foundUser, Tokens: pair}, "user logged in successfully")
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	presented := refreshTokenFromRequest(r)
	if presented == "" {
		log.Error().Msg("no refresh token presented")
		utils.WriteError(w, http.StatusUnauthorized, "refresh token is missing")
		return
	}

	foundUser, pair, err := h.services.AuthService.RefreshSession(ctx, presented)
	if err != nil {
		log.Err(err).Msg("session refresh failed")
		writeMappedError(w, err, "session refresh failed")
		return
	}

	log.Info().Str("id", foundUser.UserID).Msg("session refreshed")

	setSessionCookies(w, pair)
	utils.WriteSuccess(w, http.StatusOK, models.SessionResponse{User: foundUser, Tokens: pair}, "session refreshed successfully")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("logout failed")
		writeMappedError(w, err, "logout failed")
		return
	}

	log.Info().Str("id", userID).Msg("user logged out")

	clearSessionCookies(w)
	utils.WriteSuccess(w, http.StatusOK, nil, "user logged out successfully")
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		log.Err(err).Str("id", userID).Msg("password change failed")
		writeMappedError(w, err, "password change failed")
		return
	}

	log.Info().Str("id", userID).Msg("password changed, session revoked")

	// the stored refresh token was revoked together with the password change
	clearSessionCookies(w)
	utils.WriteSuccess(w, http.StatusOK, nil, "password changed successfully")
}

// refreshTokenFromRequest prefers the HttpOnly cookie and falls back to the
// JSON body for non-browser clients.
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}

	return ""
}

func setSessionCookies(w http.ResponseWriter, pair models.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// saveUploadedFile spools the named multipart file part into the handler's
// temp directory and returns its local path. A missing part is not an error;
// the empty path signals "not submitted" to the service layer.
func (h *Handler) saveUploadedFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err = os.MkdirAll(h.tempDir, 0o755); err != nil {
		return "", err
	}

	localPath := filepath.Join(h.tempDir, uuid.NewString()+filepath.Ext(header.Filename))
	out, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, file); err != nil {
		_ = os.Remove(localPath)
		return "", err
	}

	return localPath, nil
}

func (h *Handler) removeTempFiles(r *http.Request, paths ...string) {
	log := logger.FromRequest(r)
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("failed to remove temp upload")
		}
	}
}
