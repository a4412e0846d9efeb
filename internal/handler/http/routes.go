package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/auth", h.login)
		r.Get("/api/profile", h.listProfiles)
		r.Get("/api/profile/user/{user_id}", h.profileByUser)
		r.Get("/api/profile/github/{username}", h.githubRepos)
	})

	// routes behind token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth", h.currentUser)
		r.Get("/api/profile/me", h.myProfile)
		r.Post("/api/profile", h.upsertProfile)
		r.Delete("/api/profile", h.deleteAccount)
		r.Put("/api/profile/experience", h.addExperience)
		r.Delete("/api/profile/experience/{exp_id}", h.removeExperience)
		r.Put("/api/profile/education", h.addEducation)
		r.Delete("/api/profile/education/{edu_id}", h.removeEducation)
	})

	return router
}
