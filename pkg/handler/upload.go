package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/solsticeweb/blog-api/pkg/apigateway"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store/mediastore"
)

// UploadFile handles the generic file upload endpoint. It accepts multipart
// form data or a legacy JSON envelope with base64 file bytes.
type UploadFile struct {
	Media mediastore.MediaStore
}

type uploadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"file_url"`
	Filename string `json:"filename"`
}

func (h *UploadFile) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	form, err := apigateway.ParseBody(req)
	if err != nil {
		return apigateway.RespondError(err), nil
	}

	content, name, contentType := fileFromForm(form)
	if len(content) == 0 {
		return apigateway.RespondError(&blog.ValidationError{Msg: "File content is required."}), nil
	}
	if name == "" {
		return apigateway.RespondError(&blog.ValidationError{Msg: "File name is required."}), nil
	}

	key := uploadKey(name)
	if err := h.Media.Put(ctx, key, contentType, content); err != nil {
		return apigateway.RespondError(fmt.Errorf("uploading file: %w", err)), nil
	}
	log.Infof("uploaded file %s", key)
	return apigateway.Respond(http.StatusCreated, uploadResponse{
		Message:  "File uploaded successfully",
		FileURL:  h.Media.URL(key),
		Filename: key,
	}), nil
}

// fileFromForm extracts file bytes, name and declared content type from
// either body variant.
func fileFromForm(form *apigateway.Form) ([]byte, string, string) {
	if len(form.Attachments) > 0 {
		att := form.Attachments[0]
		name := form.Field("filename")
		if name == "" {
			name = att.Filename
		}
		contentType := form.Field("fileType")
		if contentType == "" {
			contentType = att.ContentType
		}
		return att.Data, name, contentType
	}

	// multipart clients that send the file as a plain field
	if file := form.Field("file"); file != "" {
		name := form.Field("filename")
		if name == "" {
			name = "uploaded_file"
		}
		return []byte(file), name, form.Field("fileType")
	}

	// legacy JSON envelope: file_content is base64, but raw text is
	// tolerated for clients that never encoded
	content := form.Field("file_content")
	if content == "" {
		return nil, form.Field("file_name"), ""
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		data = []byte(content)
	}
	return data, form.Field("file_name"), form.Field("fileType")
}

// uploadKey builds a collision resistant object key from the original name.
func uploadKey(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), suffix, name)
}
