package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "hello-world", Slugify("  Hello World  "))
	assert.Equal(t, "already-a-slug", Slugify("already-a-slug"))
	assert.Equal(t, "", Slugify("   "))

	// Deterministic: same input, same output
	assert.Equal(t, Slugify("Go Is Fun"), Slugify("Go Is Fun"))
}

func TestExcerpt(t *testing.T) {
	short := "a short post body"
	assert.Equal(t, short, Excerpt(short))

	exact := strings.Repeat("x", 140)
	assert.Equal(t, exact, Excerpt(exact))

	long := strings.Repeat("y", 141)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("y", 140)+"...", got)
	assert.Len(t, got, 143)
}

func TestExcerptCountsCharactersNotBytes(t *testing.T) {
	long := strings.Repeat("é", 150)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("é", 140)+"...", got)
}

func TestNewPostDefaults(t *testing.T) {
	post := NewPost("Hello World", "content", "Jane Doe", nil)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "content", post.Excerpt)
	assert.Equal(t, PostStatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)

	tagged := NewPost("Hello", "content", "Jane Doe", []string{"go", "web"})
	assert.Equal(t, []string{"go", "web"}, tagged.Tags)
}

func TestNewAccountDefaults(t *testing.T) {
	account := NewAccount("Jane Doe", "jane@example.com", "sha256:secret")

	assert.Equal(t, RoleUser, account.Role)
	assert.True(t, account.IsActive)
	assert.Nil(t, account.AvatarURL)
}

func TestNewContactEntryDefaults(t *testing.T) {
	entry := NewContactEntry("Jane Doe", "jane@example.com", nil, "hi there")

	assert.Equal(t, ContactStatusNew, entry.Status)
	assert.Nil(t, entry.Company)

	company := "Acme"
	withCompany := NewContactEntry("Jane Doe", "jane@example.com", &company, "hi there")
	require.NotNil(t, withCompany.Company)
	assert.Equal(t, "Acme", *withCompany.Company)
}

func TestDocumentRoundTrip(t *testing.T) {
	account := NewAccount("Jane Doe", "jane@example.com", "sha256:secret")

	doc, err := ToDocument(account)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", doc["email"])
	assert.Equal(t, "user", doc["role"])
	assert.Equal(t, true, doc["is_active"])
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "avatar_url")

	var decoded Account
	require.NoError(t, FromDocument(doc, &decoded))
	assert.Equal(t, account, decoded)
}
