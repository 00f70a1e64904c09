package api

import (
	"net/http"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/rpupo63/saas-starter-backend/errs"
	"github.com/rpupo63/saas-starter-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     docstore.Store
}

func newContactHandler(store docstore.Store) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type contactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// submitContact stores the entry and acknowledges with a fixed status.
// No read-back or notification happens.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewStoreUnavailableError())
			return
		}

		var payload contactPayload
		if err := decodePayload(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry := models.NewContactEntry(payload.Name, payload.Email, payload.Company, payload.Message)

		doc, err := models.ToDocument(entry)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to encode contact entry"))
			return
		}

		id, err := h.store.Create(r.Context(), models.ContactCollection, doc)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("create contact entry", models.ContactCollection, err))
			return
		}

		h.responder.WriteJSON(w, contactResponse{
			ID:     id,
			Status: "received",
		})
	}
}
