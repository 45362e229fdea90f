package product

import "github.com/elokrypt/bestbuy-2.0/internal/domain"

// Catalog is the read-only store surface the listing module needs.
type Catalog interface {
	ListActive() []*domain.Product
	TotalStock() int
}
