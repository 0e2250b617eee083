package response

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/bookhavenapp/bookhaven-server/internal/errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess_WrapsData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "book-1"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "book-1", body["data"].(map[string]any)["id"])
	assert.NotContains(t, body, "error")
}

func TestError_CarriesCode(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "book not found", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Equal(t, "book not found", errBody["message"])
}

func TestHandleError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domainerrors.Forbidden("admin access required"), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeEnvelope(t, rec)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errBody["code"])
}

func TestHandleError_WrappedDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("load book: %w", domainerrors.NotFound("book not found"))
	HandleError(rec, wrapped, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleError_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("disk on fire"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeEnvelope(t, rec)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "INTERNAL", errBody["code"])
	// Internal details never leak to clients.
	assert.NotContains(t, errBody["message"], "disk")
}
