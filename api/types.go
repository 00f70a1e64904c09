package api

import (
	"github.com/rpupo63/saas-starter-backend/docstore"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	systemHandler  systemHandler
	authHandler    authHandler
	pricingHandler pricingHandler
	blogHandler    blogHandler
	contactHandler contactHandler
}

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct. The store may be nil when no connection was
// established at startup; handlers answer with a store-unavailable
// error in that case.
func initializeHandlers(store docstore.Store, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		systemHandler:  newSystemHandler(store, cfg),
		authHandler:    newAuthHandler(store),
		pricingHandler: newPricingHandler(),
		blogHandler:    newBlogHandler(store),
		contactHandler: newContactHandler(store),
	}
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
