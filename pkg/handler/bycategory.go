package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/solsticeweb/blog-api/pkg/apigateway"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/blogstore"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// GetBlogsByCategory handles listing within a single category. An empty
// result is a success, not an error.
type GetBlogsByCategory struct {
	Blogs  blogstore.BlogStore
	Images mediastore.MediaStore
}

func (h *GetBlogsByCategory) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := req.QueryStringParameters
	category := params["category"]
	if category == "" {
		return apigateway.RespondError(&blog.ValidationError{Msg: "Missing 'category' query parameter."}), nil
	}
	status := params["status"]
	if status == "" {
		status = blog.StatusPublished
	}

	page, err := h.Blogs.List(ctx, blogstore.Query{
		Status:   status,
		Category: category,
		Limit:    parseLimit(params["limit"], 10),
		Cursor:   params["last_evaluated_key"],
	})
	if err != nil {
		return apigateway.RespondError(fmt.Errorf("listing blogs in category %s: %w", category, err)), nil
	}

	resp := listResponse{
		Blogs:            formatBlogs(page.Posts, h.Images),
		Count:            len(page.Posts),
		HasMore:          page.Cursor != "",
		LastEvaluatedKey: page.Cursor,
	}
	if len(page.Posts) == 0 {
		resp.Message = "No blogs found for the specified category."
	}
	return apigateway.Respond(http.StatusOK, resp), nil
}
