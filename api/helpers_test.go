package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/stretchr/testify/require"
)

// newTestServer stands up the full router over the given store, the way
// production wires it, minus the real listener.
func newTestServer(t *testing.T, store docstore.Store) *httptest.Server {
	t.Helper()

	cfg := map[string]string{
		"DATABASE_URL":  "postgres://localhost/app",
		"DATABASE_NAME": "app",
	}
	ts := httptest.NewServer(newRouter(store, withConfig(cfg)))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var v map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func decodeBodyArray(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var v []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// failingStore simulates a reachable handle whose operations all fail.
type failingStore struct{}

var errStoreBroken = errors.New("something went terribly wrong in the backing store, with plenty of detail")

func (failingStore) Create(context.Context, string, docstore.Document) (string, error) {
	return "", errStoreBroken
}

func (failingStore) Find(context.Context, string, docstore.Filter, int) ([]docstore.Document, error) {
	return nil, errStoreBroken
}

func (failingStore) Collections(context.Context) ([]string, error) {
	return nil, errStoreBroken
}
