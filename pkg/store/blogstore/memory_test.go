package blogstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store"
)

func seed(t *testing.T, s *MemoryBlogStore, posts ...blog.Post) {
	t.Helper()
	for _, p := range posts {
		require.NoError(t, s.Put(context.Background(), p))
	}
}

func TestMemoryBlogStore(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		s := NewMemoryBlogStore()
		post := blog.Post{ID: "p1", Title: "Hello", HTMLContent: "<p>World</p>", Status: blog.StatusPublished}
		seed(t, s, post)

		got, err := s.Get(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, post, got)
	})

	t.Run("get missing", func(t *testing.T) {
		s := NewMemoryBlogStore()
		_, err := s.Get(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list filters by status, newest first", func(t *testing.T) {
		s := NewMemoryBlogStore()
		seed(t, s,
			blog.Post{ID: "a", Status: "published", PublishedAt: "2026-01-01T00:00:00Z"},
			blog.Post{ID: "b", Status: "published", PublishedAt: "2026-03-01T00:00:00Z"},
			blog.Post{ID: "c", Status: "draft", PublishedAt: "2026-02-01T00:00:00Z"},
		)

		page, err := s.List(ctx, Query{Status: "published"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 2)
		require.Equal(t, "b", page.Posts[0].ID)
		require.Equal(t, "a", page.Posts[1].ID)
		require.Empty(t, page.Cursor)
	})

	t.Run("pagination resumes from cursor", func(t *testing.T) {
		s := NewMemoryBlogStore()
		seed(t, s,
			blog.Post{ID: "a", Status: "published", PublishedAt: "2026-01-01T00:00:00Z"},
			blog.Post{ID: "b", Status: "published", PublishedAt: "2026-02-01T00:00:00Z"},
			blog.Post{ID: "c", Status: "published", PublishedAt: "2026-03-01T00:00:00Z"},
		)

		first, err := s.List(ctx, Query{Status: "published", Limit: 2})
		require.NoError(t, err)
		require.Len(t, first.Posts, 2)
		require.NotEmpty(t, first.Cursor)

		second, err := s.List(ctx, Query{Status: "published", Limit: 2, Cursor: first.Cursor})
		require.NoError(t, err)
		require.Len(t, second.Posts, 1)
		require.Equal(t, "a", second.Posts[0].ID)
		require.Empty(t, second.Cursor)
	})

	t.Run("invalid cursor is ignored", func(t *testing.T) {
		s := NewMemoryBlogStore()
		seed(t, s, blog.Post{ID: "a", Status: "published"})

		page, err := s.List(ctx, Query{Status: "published", Cursor: "{bogus}"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
	})

	t.Run("list filters by category", func(t *testing.T) {
		s := NewMemoryBlogStore()
		seed(t, s,
			blog.Post{ID: "a", Status: "published", Category: "travel"},
			blog.Post{ID: "b", Status: "published", Category: "food"},
		)

		page, err := s.List(ctx, Query{Status: "published", Category: "travel"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		require.Equal(t, "a", page.Posts[0].ID)
	})

	t.Run("search is case sensitive and published only", func(t *testing.T) {
		s := NewMemoryBlogStore()
		seed(t, s,
			blog.Post{ID: "a", Status: "published", Title: "all about go"},
			blog.Post{ID: "b", Status: "published", Title: "All About Go"},
			blog.Post{ID: "c", Status: "draft", Title: "all about go"},
		)

		posts, err := s.Search(ctx, "go", 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Equal(t, "a", posts[0].ID)
	})
}
