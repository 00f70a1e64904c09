package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/rpupo63/saas-starter-backend/errs"
	"github.com/rpupo63/saas-starter-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     docstore.Store
}

func newBlogHandler(store docstore.Store) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// postSummary is the lightweight listing view of a post; content is
// deliberately left out.
type postSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	AuthorName  string     `json:"author_name"`
	CoverImage  *string    `json:"cover_image"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
}

type blogCreateResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// listPublishedPosts returns every post with status published, in
// whatever order the store yields them.
func (h blogHandler) listPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewStoreUnavailableError())
			return
		}

		filter := docstore.Filter{"status": models.PostStatusPublished}
		docs, err := h.store.Find(r.Context(), models.PostCollection, filter, 0)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("find posts", models.PostCollection, err))
			return
		}

		summaries := make([]postSummary, 0, len(docs))
		for _, doc := range docs {
			var post models.Post
			if err := models.FromDocument(doc, &post); err != nil {
				h.logger.Error().Err(err).Msg("Skipping undecodable post document")
				continue
			}
			tags := post.Tags
			if tags == nil {
				tags = []string{}
			}
			summaries = append(summaries, postSummary{
				ID:          post.ID,
				Title:       post.Title,
				Slug:        post.Slug,
				Excerpt:     post.Excerpt,
				AuthorName:  post.AuthorName,
				CoverImage:  post.CoverImage,
				Tags:        tags,
				PublishedAt: post.PublishedAt,
			})
		}

		h.responder.WriteJSON(w, summaries)
	}
}

// createPost derives slug, excerpt and publication time, stores the post
// as published, and returns the id and slug. Slugs are not checked for
// collisions.
func (h blogHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewStoreUnavailableError())
			return
		}

		var payload blogCreatePayload
		if err := decodePayload(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := models.NewPost(payload.Title, payload.Content, payload.AuthorName, payload.Tags)

		doc, err := models.ToDocument(post)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to encode post"))
			return
		}

		id, err := h.store.Create(r.Context(), models.PostCollection, doc)
		if err != nil {
			h.responder.WriteError(w, errs.NewStoreError("create post", models.PostCollection, err))
			return
		}

		h.responder.WriteJSON(w, blogCreateResponse{
			ID:   id,
			Slug: post.Slug,
		})
	}
}
