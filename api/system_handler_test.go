package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rpupo63/saas-starter-backend/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootBanner(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	resp := getJSON(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "SaaS API running", body["message"])
}

func TestPricing(t *testing.T) {
	ts := newTestServer(t, docstore.NewMemoryStore())

	resp := getJSON(t, ts.URL+"/api/pricing")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "USD", body["currency"])

	plans, ok := body["plans"].([]any)
	require.True(t, ok)
	require.Len(t, plans, 3)

	starter := plans[0].(map[string]any)
	assert.Equal(t, "Starter", starter["name"])
	assert.Equal(t, float64(0), starter["price"])

	business := plans[2].(map[string]any)
	assert.Equal(t, "Business", business["name"])
	assert.Equal(t, float64(49), business["price"])
}

func TestDiagnosticsWithStore(t *testing.T) {
	store := docstore.NewMemoryStore()
	ts := newTestServer(t, store)

	// Seed one collection through the public API
	resp := postJSON(t, ts.URL+"/api/auth/register", map[string]any{
		"name": "Jane Doe", "email": "jane@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, ts.URL+"/test")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "connected and working", body["database"])
	assert.Equal(t, "connected", body["connection_status"])
	assert.Equal(t, "set", body["database_url"])
	assert.Equal(t, "set", body["database_name"])
	assert.Equal(t, []any{"user"}, body["collections"])
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := getJSON(t, ts.URL+"/test")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "not available", body["database"])
	assert.Equal(t, "not connected", body["connection_status"])
	assert.Nil(t, body["database_url"])
	assert.Nil(t, body["database_name"])
	assert.Equal(t, []any{}, body["collections"])
}

func TestDiagnosticsSwallowsStoreErrors(t *testing.T) {
	ts := newTestServer(t, failingStore{})

	resp := getJSON(t, ts.URL+"/test")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	database, ok := body["database"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(database, "connected but error: "))

	// Inline error text is capped at 50 characters
	inline := strings.TrimPrefix(database, "connected but error: ")
	assert.LessOrEqual(t, len(inline), 50)
	assert.Equal(t, []any{}, body["collections"])
}
