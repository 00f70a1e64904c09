package api

import (
	"net/http"

	"github.com/rpupo63/saas-starter-backend/config"
	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// collectionListCap bounds how many collection names the diagnostics
// endpoint reports.
const collectionListCap = 10

// diagErrorCap bounds how much of a store error is echoed inline.
const diagErrorCap = 50

type systemHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     docstore.Store
	config    map[string]string
}

func newSystemHandler(store docstore.Store, cfg map[string]string) systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()

	return systemHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		config:    cfg,
	}
}

func (h systemHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{"message": "SaaS API running"})
	}
}

// diagnostics reports store and configuration health. Unlike every other
// endpoint, store failures here are swallowed and reported inline as
// truncated text; the request itself always succeeds.
func (h systemHandler) diagnostics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"backend":           "running",
			"database":          "not available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "not connected",
			"collections":       []string{},
		}

		if h.store != nil {
			response["database"] = "available"
			response["database_url"] = settingFlag(config.IsSet(h.config, "DATABASE_URL"))
			response["database_name"] = settingFlag(config.IsSet(h.config, "DATABASE_NAME"))
			response["connection_status"] = "connected"

			collections, err := h.store.Collections(r.Context())
			if err != nil {
				response["database"] = "connected but error: " + truncateError(err, diagErrorCap)
			} else {
				if collections == nil {
					collections = []string{}
				}
				if len(collections) > collectionListCap {
					collections = collections[:collectionListCap]
				}
				response["collections"] = collections
				response["database"] = "connected and working"
			}
		}

		h.responder.WriteJSON(w, response)
	}
}

func settingFlag(isSet bool) string {
	if isSet {
		return "set"
	}
	return "not set"
}

func truncateError(err error, max int) string {
	msg := err.Error()
	if len(msg) > max {
		return msg[:max]
	}
	return msg
}
