package kernel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/kernel"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/testdb"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/testkit"
)

func TestScenarios(t *testing.T) {
	testkit.RunDir(t, "testdata", func(t *testing.T) http.Handler {
		return kernel.NewHTTPKernel(testdb.New(t), kernel.WithoutRateLimit()).Handler()
	})
}

func TestNamedRoutes(t *testing.T) {
	k := kernel.NewHTTPKernel(testdb.New(t), kernel.WithoutRateLimit())

	url, err := k.Router().URL("inventories.show", map[string]string{"inventory_id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/inventories/42", url)

	names := map[string]bool{}
	for _, r := range k.Router().Routes() {
		names[r.Name] = true
	}
	for _, name := range []string{
		"home", "health", "metrics",
		"inventories.index", "inventories.store", "inventories.show",
		"inventories.update", "inventories.destroy", "inventories.clear",
	} {
		assert.True(t, names[name], name)
	}
}

// denyAll rejects every request.
type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func TestRateLimitedRequestsGetErrorBody(t *testing.T) {
	h := kernel.NewHTTPKernel(testdb.New(t), kernel.WithLimiter(denyAll{})).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t,
		`{"status_code":429,"error":"Too Many Requests","message":"Too many requests, slow down."}`,
		rec.Body.String())
}

func TestCORSHeaders(t *testing.T) {
	h := kernel.NewHTTPKernel(testdb.New(t), kernel.WithoutRateLimit()).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/inventories", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Location")
}
