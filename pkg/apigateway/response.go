package apigateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	logging "github.com/ipfs/go-log/v2"

	"github.com/solsticeweb/blog-api/internal/telemetry"
	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store"
)

var log = logging.Logger("apigateway")

// corsHeaders are attached to every response. The API is browser facing and
// deliberately permissive.
func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	}
}

// Message is the body shape of error and status-only responses.
type Message struct {
	Message string `json:"message"`
}

// Respond builds the uniform JSON response envelope.
func Respond(statusCode int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshaling response payload: %s", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       `{"message":"Internal server error."}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

// RespondError maps an error to a status code, exactly once, at the handler
// boundary. Validation problems and unparseable bodies are the caller's
// fault, absent records are 404, anything else is an internal failure that
// is logged and reported but not leaked.
func RespondError(err error) events.APIGatewayProxyResponse {
	var verr *blog.ValidationError
	switch {
	case errors.As(err, &verr):
		return Respond(http.StatusBadRequest, Message{Message: verr.Msg})
	case errors.Is(err, ErrMalformedBody):
		return Respond(http.StatusBadRequest, Message{Message: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return Respond(http.StatusNotFound, Message{Message: "Blog not found."})
	default:
		log.Errorf("internal error: %s", err)
		telemetry.ReportError(err)
		return Respond(http.StatusInternalServerError, Message{Message: "Internal server error."})
	}
}
