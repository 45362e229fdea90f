package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/dto"
	"github.com/elokrypt/bestbuy-2.0/internal/testutil"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewModule(testutil.NewTestStore(t), zap.NewNop())
}

func placeOrder(t *testing.T, ctrl *Controller, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandlePlaceOrder(rec, req)
	return rec
}

func TestHandlePlaceOrder_Success(t *testing.T) {
	ctrl := newTestController(t)

	rec := placeOrder(t, ctrl, `{"lines":[{"product":"MacBook Air M2","quantity":1},{"product":"Google Pixel 7","quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.TraceID)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, string(dto.OrderAllSuccess), resp.Status)
	assert.Equal(t, 2450.0, resp.TotalPrice)
	assert.Len(t, resp.Successes, 2)
	assert.Empty(t, resp.Failures)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHandlePlaceOrder_PartialFailure(t *testing.T) {
	ctrl := newTestController(t)

	rec := placeOrder(t, ctrl, `{"lines":[{"product":"Shipping","quantity":2},{"product":"Google Pixel 7","quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(dto.OrderPartial), resp.Status)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, string(dto.ReasonMaxExceeded), resp.Failures[0].Reason)
	assert.NotEmpty(t, resp.Failures[0].Detail)
}

func TestHandlePlaceOrder_AllFailed(t *testing.T) {
	ctrl := newTestController(t)

	rec := placeOrder(t, ctrl, `{"lines":[{"product":"Nokia 3310","quantity":1}]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(dto.OrderAllFailed), resp.Status)
	assert.Zero(t, resp.TotalPrice)
}

func TestHandlePlaceOrder_InvalidJSON(t *testing.T) {
	ctrl := newTestController(t)

	rec := placeOrder(t, ctrl, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestHandlePlaceOrder_ValidationFailures(t *testing.T) {
	ctrl := newTestController(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty lines", `{"lines":[]}`},
		{"missing product", `{"lines":[{"quantity":1}]}`},
		{"zero quantity", `{"lines":[{"product":"Google Pixel 7","quantity":0}]}`},
		{"negative quantity", `{"lines":[{"product":"Google Pixel 7","quantity":-2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := placeOrder(t, ctrl, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}
