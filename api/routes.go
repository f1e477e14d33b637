package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the REST surface under the /api prefix. Public reads
// carry optional authentication so admin callers can see unpublished rows;
// every mutating route and admin read re-verifies the bearer token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/signup", handlers.authHandler.signup())

		// Public reads (admin sees unpublished rows via ?all=true)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.maybeAuthenticate)

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/projects/{slug}", handlers.projectHandler.getProjectBySlug())
			r.Get("/team", handlers.teamMemberHandler.getAllTeamMembers())
			r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
			r.Get("/blog", handlers.blogPostHandler.getAllBlogPosts())
			r.Get("/blog/{slug}", handlers.blogPostHandler.getBlogPostBySlug())
		})

		r.Get("/settings", handlers.settingsHandler.getSettings())
		r.Post("/contacts", handlers.contactHandler.createContact())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/auth/session", handlers.authHandler.session())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{slug}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{slug}", handlers.projectHandler.deleteProject())

			r.Post("/team", handlers.teamMemberHandler.createTeamMember())
			r.Put("/team/{memberID}", handlers.teamMemberHandler.updateTeamMember())
			r.Delete("/team/{memberID}", handlers.teamMemberHandler.deleteTeamMember())

			r.Post("/testimonials", handlers.testimonialHandler.createTestimonial())
			r.Put("/testimonials/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
			r.Delete("/testimonials/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

			r.Post("/blog", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog/{slug}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog/{slug}", handlers.blogPostHandler.deleteBlogPost())

			r.Get("/contacts", handlers.contactHandler.getAllContacts())

			r.Put("/settings", handlers.settingsHandler.updateSettings())
			r.Put("/settings/{key}", handlers.settingsHandler.updateSetting())

			r.Get("/stats", handlers.statsHandler.getStats())

			r.Post("/upload/{bucket}", handlers.uploadHandler.uploadFile())
		})
	})
}
