package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the owner-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, gate ownerGate, startupTime time.Time) {
	r.Get("/health", healthHandler(startupTime))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/projects", handlers.projectHandler.listProjects())
			r.Get("/projects/slug/{slug}", handlers.projectHandler.getProjectBySlug())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

			r.Get("/competitions", handlers.competitionHandler.listCompetitions())
			r.Get("/competitions/{competitionID}", handlers.competitionHandler.getCompetition())

			r.Get("/blog-posts", handlers.blogPostHandler.listBlogPosts())
			r.Get("/blog-posts/slug/{slug}", handlers.blogPostHandler.getBlogPostBySlug())
			r.Get("/blog-posts/{blogPostID}", handlers.blogPostHandler.getBlogPost())

			r.Get("/socials", handlers.socialHandler.listSocials())
			r.Get("/socials/{socialID}", handlers.socialHandler.getSocial())

			r.Get("/home", handlers.homeHandler.getHome())

			r.Get("/auth/me", handlers.authHandler.me())
		})

		// Owner-only routes
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)
			r.Use(gate.requireOwner)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/competitions", handlers.competitionHandler.createCompetition())
			r.Put("/competitions/{competitionID}", handlers.competitionHandler.updateCompetition())
			r.Delete("/competitions/{competitionID}", handlers.competitionHandler.deleteCompetition())

			r.Post("/blog-posts", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog-posts/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog-posts/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/socials", handlers.socialHandler.createSocial())
			r.Put("/socials/{socialID}", handlers.socialHandler.updateSocial())
			r.Delete("/socials/{socialID}", handlers.socialHandler.deleteSocial())

			r.Put("/home", handlers.homeHandler.updateHome())

			r.Get("/dashboard/overview", handlers.dashboardHandler.overview())
		})
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok","uptime":"` + time.Since(startupTime).Round(time.Second).String() + `"}`))
	}
}
