package order

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/domain"
	"github.com/elokrypt/bestbuy-2.0/internal/dto"
	apperrors "github.com/elokrypt/bestbuy-2.0/internal/errors"
)

type PlaceOrderUseCase interface {
	PlaceOrder(lines []dto.OrderRequestLine) (*dto.OrderResult, error)
}

type Controller struct {
	useCase PlaceOrderUseCase
	logger  *zap.Logger
}

func NewController(useCase PlaceOrderUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	result, err := c.useCase.PlaceOrder(req.Lines)
	if err != nil {
		if domain.IsInvalidQuantityError(err) {
			c.writeValidationError(w, err.Error(), apperrors.ValidationDetail{
				Field:   "lines",
				Message: err.Error(),
			})
			return
		}
		logger.Error("place order failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeOrderResponse(w, traceID, result)
}

func (c *Controller) validateOrderRequest(req dto.OrderRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.Lines) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lines",
			Message: "lines must not be empty",
		})
	}

	for idx, line := range req.Lines {
		if line.Product == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "lines[" + strconv.Itoa(idx) + "].product",
				Message: "product is required",
			})
		}
		if line.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "lines[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) writeOrderResponse(w http.ResponseWriter, traceID string, result *dto.OrderResult) {
	successes := make([]dto.LineSuccessDTO, len(result.Successes))
	for i, s := range result.Successes {
		successes[i] = dto.LineSuccessDTO{
			Product:  s.Product,
			Quantity: s.Quantity,
			Total:    s.Total,
		}
	}

	failures := make([]dto.LineFailureDTO, len(result.Failures))
	for i, f := range result.Failures {
		failures[i] = dto.LineFailureDTO{
			Product:  f.Product,
			Quantity: f.Quantity,
			Reason:   string(f.Reason),
			Detail:   f.Detail,
		}
	}

	response := dto.OrderResponse{
		TraceID:    traceID,
		OrderID:    result.OrderID,
		Status:     string(result.Status),
		TotalPrice: result.TotalPrice,
		Successes:  successes,
		Failures:   failures,
		Timestamp:  time.Now().UTC(),
	}

	statusCode := http.StatusCreated
	if result.Status == dto.OrderAllFailed {
		statusCode = http.StatusUnprocessableEntity
	}

	c.writeJSON(w, statusCode, response)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
