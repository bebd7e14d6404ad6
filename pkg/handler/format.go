package handler

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

var log = logging.Logger("handler")

// FormattedBlog is the read path response shape shared by list, search,
// get-by-id and get-by-category.
type FormattedBlog struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Image       string `json:"image"`
	HTMLContent string `json:"htmlContent"`
	TextContent string `json:"textContent"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Category    string `json:"category"`
	PublishedAt string `json:"publishedAt"`
	Status      string `json:"status"`
}

// formatBlog shapes a stored post for responses, resolving the first stored
// image key to a retrievable URL. Older records without a summary fall back
// to their content.
func formatBlog(p blog.Post, images mediastore.MediaStore) FormattedBlog {
	summary := p.ContentSummary
	if summary == "" {
		summary = p.HTMLContent
	}
	var image string
	if len(p.Images) > 0 {
		image = images.URL(p.Images[0])
	}
	return FormattedBlog{
		ID:          p.ID,
		Title:       p.Title,
		Summary:     summary,
		Image:       image,
		HTMLContent: p.HTMLContent,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Category:    p.Category,
		PublishedAt: p.PublishedAt,
		Status:      p.Status,
	}
}

func formatBlogs(posts []blog.Post, images mediastore.MediaStore) []FormattedBlog {
	formatted := make([]FormattedBlog, 0, len(posts))
	for _, p := range posts {
		formatted = append(formatted, formatBlog(p, images))
	}
	return formatted
}
