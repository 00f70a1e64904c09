package models

import (
	"strings"
	"time"
)

// PostCollection is the store collection holding blog posts.
const PostCollection = "blogpost"

// Post statuses
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// excerptLimit is the maximum excerpt length in characters before
// truncation kicks in.
const excerptLimit = 140

// Post represents a blog post document.
type Post struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	AuthorName  string     `json:"author_name"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// NewPost builds a published post with slug, excerpt and publication
// timestamp derived from the inputs. A nil tag list becomes empty.
func NewPost(title, content, authorName string, tags []string) Post {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	return Post{
		Title:       title,
		Slug:        Slugify(title),
		Excerpt:     Excerpt(content),
		Content:     content,
		AuthorName:  authorName,
		Tags:        tags,
		Status:      PostStatusPublished,
		PublishedAt: &now,
	}
}

// Slugify derives a URL-safe slug from a title: lowercased, trimmed,
// spaces replaced with hyphens. No collision check is performed.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(title)), " ", "-")
}

// Excerpt truncates content to the excerpt limit plus an ellipsis marker;
// content at or under the limit comes back unchanged.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}
