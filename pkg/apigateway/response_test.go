package apigateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store"
)

func TestRespond(t *testing.T) {
	res := Respond(http.StatusCreated, Message{Message: "ok"})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.JSONEq(t, `{"message":"ok"}`, res.Body)
	require.Equal(t, "application/json", res.Headers["Content-Type"])
	require.Equal(t, "*", res.Headers["Access-Control-Allow-Origin"])
	require.Equal(t, "GET, POST, OPTIONS", res.Headers["Access-Control-Allow-Methods"])
}

func TestRespondError(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		res := RespondError(&blog.ValidationError{Msg: "Title and content are required."})
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
		require.JSONEq(t, `{"message":"Title and content are required."}`, res.Body)
	})

	t.Run("malformed body", func(t *testing.T) {
		res := RespondError(fmt.Errorf("%w: bad json", ErrMalformedBody))
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("not found, wrapped", func(t *testing.T) {
		res := RespondError(fmt.Errorf("fetching blog abc: %w", store.ErrNotFound))
		require.Equal(t, http.StatusNotFound, res.StatusCode)
		require.JSONEq(t, `{"message":"Blog not found."}`, res.Body)
	})

	t.Run("internal detail is not leaked", func(t *testing.T) {
		res := RespondError(errors.New("dynamodb: connection refused"))
		require.Equal(t, http.StatusInternalServerError, res.StatusCode)
		require.JSONEq(t, `{"message":"Internal server error."}`, res.Body)
	})
}
