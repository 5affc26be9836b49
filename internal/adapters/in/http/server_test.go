package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moving/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstimateContext(t *testing.T, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/estimates", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Estimate_RequiresIdentityHeaders(t *testing.T) {
	server := &Server{}

	t.Run("should reject a request without identity headers", func(t *testing.T) {
		ctx, rec := newEstimateContext(t, nil)

		require.NoError(t, server.Estimate(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeErrorResponse(t, rec).Message, headerActorID)
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		ctx, rec := newEstimateContext(t, map[string]string{
			headerActorID:   kernel.NewUUID().String(),
			headerActorRole: "dispatcher",
		})

		require.NoError(t, server.Estimate(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeErrorResponse(t, rec).Message, headerActorRole)
	})
}
