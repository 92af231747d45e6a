package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires all endpoints. Reads are public; every mutating route
// sits behind the admin auth middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", handlers.contentHandler.health())
		r.Get("/home", handlers.contentHandler.homeContent())
		r.Get("/search", handlers.contentHandler.search())

		r.Get("/cv", handlers.cvHandler.getCv())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/exercises", handlers.exerciseHandler.getAllExercises())
		r.Get("/exercises/{exerciseID}", handlers.exerciseHandler.getExercise())
		r.Get("/exercises/slug/{slug}", handlers.exerciseHandler.getExerciseBySlug())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/contact", handlers.contactHandler.submit())
	})

	// Admin-only routes
	r.Group(func(r chi.Router) {
		r.Use(auth.requireAdmin)

		r.Put("/cv", handlers.cvHandler.updateCv())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/exercises", handlers.exerciseHandler.createExercise())
		r.Put("/exercises/{exerciseID}", handlers.exerciseHandler.updateExercise())
		r.Delete("/exercises/{exerciseID}", handlers.exerciseHandler.deleteExercise())
	})
}
