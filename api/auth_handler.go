package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/rpupo63/saas-starter-backend/errs"
	"github.com/rpupo63/saas-starter-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// passwordTagPrefix marks stored password strings. This is a placeholder
// tag, not a cryptographic hash; see the Account model.
const passwordTagPrefix = "sha256:"

// demoToken is the fixed placeholder returned on successful login. There
// is no session model behind it.
const demoToken = "demo-token"

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     docstore.Store
}

func newAuthHandler(store docstore.Store) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type registerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// register creates an account after checking the lowercased email is not
// already taken. The lookup and the insert are not atomic: two concurrent
// registrations with the same email can both pass the check. The store
// enforces no uniqueness, so that race is accepted behavior.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewStoreUnavailableError())
			return
		}

		var payload registerPayload
		if err := decodePayload(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		email := strings.ToLower(payload.Email)

		existing, err := h.store.Find(r.Context(), models.AccountCollection, docstore.Filter{"email": email}, 1)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("find account", models.AccountCollection, err))
			return
		}
		if len(existing) > 0 {
			h.responder.WriteError(w, errs.NewDuplicateEmailError())
			return
		}

		account := models.NewAccount(payload.Name, email, passwordTagPrefix+payload.Password)

		doc, err := models.ToDocument(account)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to encode account"))
			return
		}

		id, err := h.store.Create(r.Context(), models.AccountCollection, doc)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("create account", models.AccountCollection, err))
			return
		}

		h.responder.WriteJSON(w, registerResponse{
			ID:    id,
			Name:  account.Name,
			Email: account.Email,
		})
	}
}

// login checks the stored tagged password string and hands back the fixed
// demo token. Unknown email and wrong password are deliberately
// indistinguishable in the response.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewStoreUnavailableError())
			return
		}

		var payload loginPayload
		if err := decodePayload(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		email := strings.ToLower(payload.Email)

		docs, err := h.store.Find(r.Context(), models.AccountCollection, docstore.Filter{"email": email}, 1)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("find account", models.AccountCollection, err))
			return
		}
		if len(docs) == 0 {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		var account models.Account
		if err := models.FromDocument(docs[0], &account); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to decode account"))
			return
		}

		if account.PasswordHash != passwordTagPrefix+payload.Password {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token: demoToken,
			User: loginUser{
				Name:  account.Name,
				Email: account.Email,
			},
		})
	}
}
