package product

import (
	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/catalog"
)

func NewModule(store *catalog.Store, logger *zap.Logger) *Controller {
	return NewController(store, logger)
}
