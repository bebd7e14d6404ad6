package blog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelevance(t *testing.T) {
	term := "go"

	t.Run("content only is the baseline", func(t *testing.T) {
		p := Post{Title: "Weekly digest", HTMLContent: "all about go routines"}
		require.Equal(t, 1, Relevance(p, term))
	})

	t.Run("summary match", func(t *testing.T) {
		p := Post{Title: "Weekly digest", ContentSummary: "go tips"}
		require.Equal(t, 6, Relevance(p, term))
	})

	t.Run("title match", func(t *testing.T) {
		p := Post{Title: "Learning Go"}
		require.Equal(t, 11, Relevance(p, term))
	})

	t.Run("title prefix bonus", func(t *testing.T) {
		p := Post{Title: "Go concurrency patterns"}
		require.Equal(t, 21, Relevance(p, term))
	})

	t.Run("exact title bonus", func(t *testing.T) {
		p := Post{Title: "Go"}
		require.Equal(t, 31, Relevance(p, term))
	})
}

func TestMatches(t *testing.T) {
	p := Post{Title: "Cloud Computing", ContentSummary: "", HTMLContent: "<p>notes</p>"}
	require.True(t, Matches(p, "cloud"))
	require.True(t, Matches(p, "notes"))
	require.False(t, Matches(p, "kubernetes"))
}

func TestRank(t *testing.T) {
	t.Run("title match beats content match at equal dates", func(t *testing.T) {
		titleHit := Post{ID: "a", Title: "All about go", PublishedAt: "2026-01-01T00:00:00Z"}
		contentHit := Post{ID: "b", Title: "Weekly digest", HTMLContent: "go go go", PublishedAt: "2026-01-01T00:00:00Z"}

		posts := []Post{contentHit, titleHit}
		Rank(posts, "go")
		require.Equal(t, "a", posts[0].ID)
		require.Equal(t, "b", posts[1].ID)
	})

	t.Run("equal relevance falls back to newest first", func(t *testing.T) {
		older := Post{ID: "old", Title: "go notes", PublishedAt: "2025-01-01T00:00:00Z"}
		newer := Post{ID: "new", Title: "go notes", PublishedAt: "2026-01-01T00:00:00Z"}

		posts := []Post{older, newer}
		Rank(posts, "go")
		require.Equal(t, "new", posts[0].ID)
	})

	t.Run("posts without publishedAt fall back to startDate", func(t *testing.T) {
		dated := Post{ID: "dated", Title: "go notes", StartDate: "2026-02-01"}
		undated := Post{ID: "undated", Title: "go notes"}

		posts := []Post{undated, dated}
		Rank(posts, "go")
		require.Equal(t, "dated", posts[0].ID)
	})
}
