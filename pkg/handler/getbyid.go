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

// GetBlogByID handles single post lookup by primary key.
type GetBlogByID struct {
	Blogs  blogstore.BlogStore
	Images mediastore.MediaStore
}

type getResponse struct {
	Post FormattedBlog `json:"post"`
}

func (h *GetBlogByID) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.QueryStringParameters["id"]
	if id == "" {
		return apigateway.RespondError(&blog.ValidationError{Msg: "Missing 'id' query parameter."}), nil
	}

	post, err := h.Blogs.Get(ctx, id)
	if err != nil {
		return apigateway.RespondError(fmt.Errorf("fetching blog %s: %w", id, err)), nil
	}
	return apigateway.Respond(http.StatusOK, getResponse{Post: formatBlog(post, h.Images)}), nil
}
