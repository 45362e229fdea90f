package product

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/domain"
)

type Controller struct {
	store  Catalog
	logger *zap.Logger
}

func NewController(store Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

// HandleListProducts returns the active products in catalog order.
func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	active := c.store.ListActive()

	products := make([]ProductDTO, 0, len(active))
	for _, p := range active {
		products = append(products, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, ListProductsResponse{Products: products})
}

// HandleTotalStock returns the aggregate stock count.
func (c *Controller) HandleTotalStock(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, StockResponse{TotalStock: c.store.TotalStock()})
}

func toProductDTO(p *domain.Product) ProductDTO {
	dto := ProductDTO{
		Name:        p.Name(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Unlimited:   p.Kind() == domain.KindNonStocked,
		Maximum:     p.Maximum(),
		Description: p.Describe(),
	}
	if pr := p.Promotion(); pr != nil {
		dto.Promotion = pr.Name
	}
	return dto
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
