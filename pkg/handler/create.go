package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/solsticeweb/blog-api/pkg/apigateway"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/blogstore"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// CreateBlog handles blog creation. Multipart bodies carry form fields plus
// any number of image attachments; JSON bodies carry a single base64 image
// with an imageType descriptor.
type CreateBlog struct {
	Blogs  blogstore.BlogStore
	Images mediastore.MediaStore
}

type createResponse struct {
	Message string   `json:"message"`
	BlogID  string   `json:"blog_id"`
	Images  []string `json:"images"`
}

func (h *CreateBlog) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	form, err := apigateway.ParseBody(req)
	if err != nil {
		return apigateway.RespondError(err), nil
	}

	content := form.Field("htmlContent")
	if content == "" {
		content = form.Field("content")
	}
	post, err := blog.NewPost(blog.Params{
		Title:          form.Field("title"),
		HTMLContent:    content,
		ContentSummary: form.Field("contentSummary"),
		StartDate:      form.Field("startDate"),
		EndDate:        form.Field("endDate"),
		Category:       form.Field("category"),
		Status:         form.Field("status"),
	})
	if err != nil {
		return apigateway.RespondError(err), nil
	}

	imageKeys, err := h.storeImages(ctx, post.ID, form)
	if err != nil {
		return apigateway.RespondError(err), nil
	}
	post.Images = imageKeys

	if err := h.Blogs.Put(ctx, post); err != nil {
		return apigateway.RespondError(fmt.Errorf("storing blog %s: %w", post.ID, err)), nil
	}

	imageURLs := make([]string, 0, len(imageKeys))
	for _, key := range imageKeys {
		imageURLs = append(imageURLs, h.Images.URL(key))
	}
	log.Infof("created blog %s with %d images", post.ID, len(imageKeys))
	return apigateway.Respond(http.StatusCreated, createResponse{
		Message: "Blog created successfully.",
		BlogID:  post.ID,
		Images:  imageURLs,
	}), nil
}

// storeImages uploads the post's images in submission order under keys
// derived from the post id. Uploads are not rolled back when a later one
// fails: an aborted create can leave orphaned objects behind.
func (h *CreateBlog) storeImages(ctx context.Context, id string, form *apigateway.Form) ([]string, error) {
	if len(form.Attachments) > 0 {
		keys := make([]string, 0, len(form.Attachments))
		for idx, att := range form.Attachments {
			key := fmt.Sprintf("blogs/%s-%d", id, idx)
			if err := h.Images.Put(ctx, key, att.ContentType, att.Data); err != nil {
				return nil, fmt.Errorf("uploading file index %d: %w", idx, err)
			}
			keys = append(keys, key)
		}
		return keys, nil
	}

	image := form.Field("image")
	if image == "" {
		return nil, nil
	}
	imageType := form.Field("imageType")
	if imageType == "" {
		return nil, &blog.ValidationError{Msg: "imageType is required when an image is provided."}
	}
	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding base64 image: %s", apigateway.ErrMalformedBody, err)
	}
	key := fmt.Sprintf("blogs/%s.%s", id, imageType)
	if err := h.Images.Put(ctx, key, "image/"+imageType, data); err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}
	return []string{key}, nil
}
