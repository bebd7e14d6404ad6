package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/solsticeweb/blog-api/pkg/apigateway"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/blogstore"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// SearchBlogs handles substring search over published posts. The store's
// contains matching is case sensitive, so results are re-filtered and ranked
// in process.
type SearchBlogs struct {
	Blogs  blogstore.BlogStore
	Images mediastore.MediaStore
}

type searchResponse struct {
	Blogs   []FormattedBlog `json:"blogs"`
	Count   int             `json:"count,omitempty"`
	Query   string          `json:"query,omitempty"`
	Message string          `json:"message"`
}

func (h *SearchBlogs) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := req.QueryStringParameters
	query := strings.TrimSpace(params["q"])
	if query == "" {
		return apigateway.RespondError(&blog.ValidationError{Msg: "Missing 'q' query parameter for search."}), nil
	}
	if len(query) < 2 {
		return apigateway.RespondError(&blog.ValidationError{Msg: "Search query must be at least 2 characters long."}), nil
	}
	limit := parseLimit(params["limit"], 20)

	// fetch extra candidates, the in-process re-filter below may discard some
	term := strings.ToLower(query)
	candidates, err := h.Blogs.Search(ctx, term, limit*2)
	if err != nil {
		return apigateway.RespondError(fmt.Errorf("searching blogs: %w", err)), nil
	}

	var matched []blog.Post
	for _, p := range candidates {
		if blog.Matches(p, term) {
			matched = append(matched, p)
		}
	}
	blog.Rank(matched, term)
	if int32(len(matched)) > limit {
		matched = matched[:limit]
	}

	if len(matched) == 0 {
		return apigateway.Respond(http.StatusOK, searchResponse{
			Blogs:   []FormattedBlog{},
			Message: fmt.Sprintf("No blogs found matching '%s'.", query),
		}), nil
	}
	return apigateway.Respond(http.StatusOK, searchResponse{
		Blogs:   formatBlogs(matched, h.Images),
		Count:   len(matched),
		Query:   query,
		Message: fmt.Sprintf("Found %d blogs matching '%s'.", len(matched), query),
	}), nil
}
