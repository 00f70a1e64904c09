package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/rpupo63/saas-starter-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogCreateAndList(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	resp := postJSON(t, ts.URL+"/api/blog", map[string]any{
		"title":       "Hello World",
		"content":     "the full body of the post",
		"author_name": "Jane Doe",
		"tags":        []string{"go", "web"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, "hello-world", created["slug"])
	assert.NotEmpty(t, created["id"])

	// A post created with default status shows up in the list immediately
	resp = getJSON(t, ts.URL+"/api/blog")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBodyArray(t, resp)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, created["id"], post["id"])
	assert.Equal(t, "Hello World", post["title"])
	assert.Equal(t, "hello-world", post["slug"])
	assert.Equal(t, "the full body of the post", post["excerpt"])
	assert.Equal(t, "Jane Doe", post["author_name"])
	assert.Equal(t, []any{"go", "web"}, post["tags"])
	assert.NotEmpty(t, post["published_at"])

	// The listing view never includes the full content
	assert.NotContains(t, post, "content")
}

func TestBlogListOnlyPublished(t *testing.T) {
	store := docstore.NewMemoryStore()
	ts := newTestServer(t, store)

	draft := models.NewPost("Draft Post", "unfinished", "Jane Doe", nil)
	draft.Status = models.PostStatusDraft
	doc, err := models.ToDocument(draft)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), models.PostCollection, doc)
	require.NoError(t, err)

	published := models.NewPost("Live Post", "done", "Jane Doe", nil)
	doc, err = models.ToDocument(published)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), models.PostCollection, doc)
	require.NoError(t, err)

	resp := getJSON(t, ts.URL+"/api/blog")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBodyArray(t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "live-post", posts[0]["slug"])
}

func TestBlogListEmpty(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	resp := getJSON(t, ts.URL+"/api/blog")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBodyArray(t, resp)
	assert.Empty(t, posts)
}

func TestBlogCreateExcerptTruncation(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	long := strings.Repeat("a", 200)
	resp := postJSON(t, ts.URL+"/api/blog", map[string]any{
		"title":       "Long Post",
		"content":     long,
		"author_name": "Jane Doe",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, ts.URL+"/api/blog")
	posts := decodeBodyArray(t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, strings.Repeat("a", 140)+"...", posts[0]["excerpt"])
}

func TestBlogCreateValidation(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	resp := postJSON(t, ts.URL+"/api/blog", map[string]any{
		"title":   "No Author",
		"content": "body",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "author_name", body["field"])
}

func TestBlogListStoreFailure(t *testing.T) {
	ts := newTestServer(t, failingStore{})

	resp := getJSON(t, ts.URL+"/api/blog")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
}
