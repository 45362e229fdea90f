package catalog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/domain"
	"github.com/elokrypt/bestbuy-2.0/internal/dto"
)

// Line is one (product, requested quantity) pair of an order. Products must
// be resolved before settlement; nil products are the caller's bug.
type Line struct {
	Product  *domain.Product
	Quantity int
}

// SettleOrder purchases every line in list order and accumulates the running
// total. Out-of-stock and maximum-exceeded lines are reported and skipped,
// contributing zero; the order is never rolled back, so earlier lines keep
// their stock decrements. An invalid quantity aborts the whole settlement.
func (s *Store) SettleOrder(lines []Line) (*dto.OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderID := uuid.New().String()
	successes := []dto.LineSuccess{}
	failures := []dto.LineFailure{}
	totalPrice := 0.0

	for _, line := range lines {
		name := line.Product.Name()
		lineTotal, err := line.Product.Purchase(line.Quantity)
		if err != nil {
			reason, recoverable := failureReason(err)
			if !recoverable {
				s.logger.Error("order settlement aborted",
					zap.String("orderId", orderID),
					zap.String("product", name),
					zap.Int("quantity", line.Quantity),
					zap.Error(err))
				return nil, err
			}
			failures = append(failures, dto.LineFailure{
				Product:  name,
				Quantity: line.Quantity,
				Reason:   reason,
				Detail:   err.Error(),
			})
			s.logger.Warn("order line failed",
				zap.String("orderId", orderID),
				zap.String("product", name),
				zap.Int("quantity", line.Quantity),
				zap.String("reason", string(reason)))
			continue
		}

		totalPrice += lineTotal
		successes = append(successes, dto.LineSuccess{
			Product:  name,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
		s.logger.Info("order line settled",
			zap.String("orderId", orderID),
			zap.String("product", name),
			zap.Int("quantity", line.Quantity),
			zap.Float64("lineTotal", lineTotal))
	}

	status := dto.OrderAllSuccess
	if len(failures) > 0 {
		status = dto.OrderPartial
		if len(successes) == 0 {
			status = dto.OrderAllFailed
		}
	}

	s.logger.Info("order settled",
		zap.String("orderId", orderID),
		zap.String("status", string(status)),
		zap.Int("successCount", len(successes)),
		zap.Int("failureCount", len(failures)),
		zap.Float64("totalPrice", totalPrice))

	return &dto.OrderResult{
		OrderID:    orderID,
		Status:     status,
		TotalPrice: totalPrice,
		Successes:  successes,
		Failures:   failures,
	}, nil
}

// failureReason maps a purchase error to a per-line failure reason. The
// second return is false for errors that must abort the whole order.
func failureReason(err error) (dto.FailureReason, bool) {
	switch {
	case domain.IsOutOfStockError(err):
		return dto.ReasonOutOfStock, true
	case domain.IsMaxQuantityError(err):
		return dto.ReasonMaxExceeded, true
	default:
		return "", false
	}
}
