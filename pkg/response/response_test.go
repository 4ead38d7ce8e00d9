package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/response"
)

var errWidgetMissing = errors.New("widget missing")

func init() {
	response.RegisterTranslator(func(err error) (int, string, bool) {
		if errors.Is(err, errWidgetMissing) {
			return http.StatusNotFound, err.Error(), true
		}
		return 0, "", false
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusConflict, "already exists")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, response.ErrorBody{StatusCode: 409, Error: "Conflict", Message: "already exists"}, decode(t, rec))
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Message(rec, http.StatusOK, "OK")
	assert.JSONEq(t, `{"status":200,"message":"OK"}`, rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	response.NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErr_Translated(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	response.Err(rec, req, fmt.Errorf("lookup: %w", errWidgetMissing))

	body := decode(t, rec)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "Not Found", body.Error)
}

func TestErr_HTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	response.Err(rec, req, response.NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "Unsupported Media Type", body.Error)
}

func TestErr_UnknownIs500WithoutLeakingDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	response.Err(rec, req, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.NotContains(t, body.Message, "10.0.0.1")
}
