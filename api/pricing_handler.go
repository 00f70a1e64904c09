package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pricingHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newPricingHandler() pricingHandler {
	logger := log.With().Str("handlerName", "pricingHandler").Logger()

	return pricingHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

type pricingPlan struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
}

type pricingResponse struct {
	Currency string        `json:"currency"`
	Plans    []pricingPlan `json:"plans"`
}

// pricing is static; plans are fixed at build time.
var pricing = pricingResponse{
	Currency: "USD",
	Plans: []pricingPlan{
		{
			Name:     "Starter",
			Price:    0,
			Period:   "mo",
			Features: []string{"Up to 3 projects", "Community support", "Basic analytics"},
		},
		{
			Name:     "Pro",
			Price:    19,
			Period:   "mo",
			Features: []string{"Unlimited projects", "Priority support", "Advanced analytics"},
		},
		{
			Name:     "Business",
			Price:    49,
			Period:   "mo",
			Features: []string{"Team workspaces", "SSO (SAML)", "Custom reports"},
		},
	},
}

func (h pricingHandler) getPricing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, pricing)
	}
}
