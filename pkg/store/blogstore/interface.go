package blogstore

import (
	"context"

	"github.com/solsticeweb/blog-api/pkg/blog"
)

// Query selects a page of posts. Category is optional; when set the lookup
// uses the composite (status, category) index. Cursor is an opaque
// continuation token from a previous Page.
type Query struct {
	Status   string
	Category string
	Limit    int32
	Cursor   string
}

// Page is one page of results. Cursor is non-empty when more results remain
// and resumes iteration when passed back in a Query.
type Page struct {
	Posts  []blog.Post
	Cursor string
}

// BlogStore is the table of blog posts.
type BlogStore interface {
	// Put inserts a post record.
	Put(ctx context.Context, post blog.Post) error
	// Get retrieves a post by id. Returns [store.ErrNotFound] when absent.
	Get(ctx context.Context, id string) (blog.Post, error)
	// List returns posts matching the query, newest first.
	List(ctx context.Context, q Query) (Page, error)
	// Search returns up to limit published posts where term occurs in the
	// title, summary or content. Matching is case sensitive; callers that
	// need case insensitivity must refine the results themselves.
	Search(ctx context.Context, term string, limit int32) ([]blog.Post, error)
}
