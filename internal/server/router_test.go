package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/order"
	"github.com/elokrypt/bestbuy-2.0/internal/product"
	"github.com/elokrypt/bestbuy-2.0/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := testutil.NewTestStore(t)
	logger := zap.NewNop()
	return NewRouter(product.NewModule(store, logger), order.NewModule(store, logger), logger)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/v1/products", "", http.StatusOK},
		{http.MethodGet, "/api/v1/stock", "", http.StatusOK},
		{http.MethodPost, "/api/v1/orders", `{"lines":[{"product":"Google Pixel 7","quantity":1}]}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/orders", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
		})
	}
}
