package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/solsticeweb/blog-api/pkg/apigateway"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/blogstore"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// ListBlogs handles paginated listing, newest first.
type ListBlogs struct {
	Blogs  blogstore.BlogStore
	Images mediastore.MediaStore
}

type listResponse struct {
	Blogs            []FormattedBlog `json:"blogs"`
	Count            int             `json:"count"`
	HasMore          bool            `json:"has_more"`
	LastEvaluatedKey string          `json:"last_evaluated_key,omitempty"`
	Message          string          `json:"message,omitempty"`
}

func (h *ListBlogs) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := req.QueryStringParameters
	status := params["status"]
	if status == "" {
		status = blog.StatusPublished
	}

	page, err := h.Blogs.List(ctx, blogstore.Query{
		Status: status,
		Limit:  parseLimit(params["limit"], 10),
		Cursor: params["last_evaluated_key"],
	})
	if err != nil {
		return apigateway.RespondError(fmt.Errorf("listing blogs: %w", err)), nil
	}

	resp := listResponse{
		Blogs:            formatBlogs(page.Posts, h.Images),
		Count:            len(page.Posts),
		HasMore:          page.Cursor != "",
		LastEvaluatedKey: page.Cursor,
	}
	if len(page.Posts) == 0 {
		resp.Message = "No blogs found."
	}
	return apigateway.Respond(http.StatusOK, resp), nil
}

// parseLimit parses a limit query parameter; anything unusable falls back to
// the default.
func parseLimit(value string, fallback int32) int32 {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Warnf("invalid limit %q, using %d", value, fallback)
		return fallback
	}
	return int32(n)
}
