package order

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/catalog"
	"github.com/elokrypt/bestbuy-2.0/internal/domain"
	"github.com/elokrypt/bestbuy-2.0/internal/dto"
)

// Catalog is the narrow store surface the order module needs.
type Catalog interface {
	Find(name string) (*domain.Product, bool)
	SettleOrder(lines []catalog.Line) (*dto.OrderResult, error)
}

type Service struct {
	store  Catalog
	logger *zap.Logger
}

func NewService(store Catalog, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// PlaceOrder resolves each requested line against the catalog and settles the
// resolvable ones. Unknown and deactivated products become per-line failures;
// a non-positive quantity aborts the whole order.
func (s *Service) PlaceOrder(lines []dto.OrderRequestLine) (*dto.OrderResult, error) {
	resolved := make([]catalog.Line, 0, len(lines))
	var unresolved []dto.LineFailure

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domain.NewInvalidQuantityError(line.Quantity)
		}

		p, ok := s.store.Find(line.Product)
		if !ok {
			unresolved = append(unresolved, dto.LineFailure{
				Product:  line.Product,
				Quantity: line.Quantity,
				Reason:   dto.ReasonNotFound,
				Detail:   fmt.Sprintf("product %q is not in the store", line.Product),
			})
			s.logger.Warn("order line references unknown product",
				zap.String("product", line.Product),
				zap.Int("quantity", line.Quantity))
			continue
		}
		if !p.Active() {
			unresolved = append(unresolved, dto.LineFailure{
				Product:  line.Product,
				Quantity: line.Quantity,
				Reason:   dto.ReasonInactive,
				Detail:   fmt.Sprintf("product %q is not orderable", line.Product),
			})
			s.logger.Warn("order line references inactive product",
				zap.String("product", line.Product),
				zap.Int("quantity", line.Quantity))
			continue
		}

		resolved = append(resolved, catalog.Line{Product: p, Quantity: line.Quantity})
	}

	result, err := s.store.SettleOrder(resolved)
	if err != nil {
		return nil, err
	}

	if len(unresolved) > 0 {
		result.Failures = append(result.Failures, unresolved...)
		result.Status = dto.OrderPartial
		if len(result.Successes) == 0 {
			result.Status = dto.OrderAllFailed
		}
	}
	return result, nil
}
