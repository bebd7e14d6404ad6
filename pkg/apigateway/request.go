package apigateway

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// ErrMalformedBody is returned when a request body cannot be decoded: a bad
// multipart boundary, invalid JSON or undecodable base64.
var ErrMalformedBody = errors.New("malformed request body")

// Attachment is a single binary file part from a multipart body.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Form is the uniform shape of a decoded request body. Fields holds text
// form fields or, for JSON bodies, the top-level object with nested values
// preserved. Attachments holds file parts in submission order.
type Form struct {
	Fields      map[string]any
	Attachments []Attachment
}

// Field returns the named field as a string, or "" when absent or not text.
func (f *Form) Field(name string) string {
	if s, ok := f.Fields[name].(string); ok {
		return s
	}
	return ""
}

// ParseBody decodes the request body into a Form. Multipart bodies are split
// into fields and ordered attachments; anything else with a body is treated
// as a JSON object. No semantic validation happens here.
func ParseBody(req events.APIGatewayProxyRequest) (*Form, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding base64 body: %s", ErrMalformedBody, err)
		}
		body = decoded
	}

	contentType := header(req.Headers, "content-type")
	if strings.Contains(contentType, "multipart/form-data") {
		return parseMultipart(body, contentType)
	}
	return parseJSON(body)
}

func parseMultipart(body []byte, contentType string) (*Form, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["boundary"] == "" {
		return nil, fmt.Errorf("%w: missing multipart boundary", ErrMalformedBody)
	}

	form := &Form{Fields: map[string]any{}}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading multipart: %s", ErrMalformedBody, err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("%w: reading part %q: %s", ErrMalformedBody, part.FormName(), err)
		}
		if part.FileName() != "" {
			form.Attachments = append(form.Attachments, Attachment{
				Filename:    part.FileName(),
				ContentType: part.Header.Get("Content-Type"),
				Data:        data,
			})
		} else {
			form.Fields[part.FormName()] = string(data)
		}
	}
	return form, nil
}

func parseJSON(body []byte) (*Form, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, err)
	}
	return &Form{Fields: fields}, nil
}

// header does a case-insensitive lookup; API Gateway does not canonicalize
// header casing.
func header(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
