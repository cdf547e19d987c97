package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/users/register", h.register)
		r.Post("/api/v1/users/login", h.login)
		r.Post("/api/v1/users/refresh-token", h.refreshToken)
	})

	// routes requiring a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/v1/users/logout", h.logout)
		r.Post("/api/v1/users/change-password", h.changePassword)
		r.Get("/api/v1/users/me", h.me)
		r.Patch("/api/v1/users/profile", h.updateProfile)
		r.Patch("/api/v1/users/avatar", h.updateAvatar)
		r.Patch("/api/v1/users/cover-image", h.updateCoverImage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
