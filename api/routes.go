package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. All routes are public; there is no
// authenticated surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.systemHandler.root())
		r.Get("/test", handlers.systemHandler.diagnostics())

		r.Post("/api/auth/register", handlers.authHandler.register())
		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/pricing", handlers.pricingHandler.getPricing())

		r.Get("/api/blog", handlers.blogHandler.listPublishedPosts())
		r.Post("/api/blog", handlers.blogHandler.createPost())

		r.Post("/api/contact", handlers.contactHandler.submitContact())
	})
}
