package catalog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/elokrypt/bestbuy-2.0/internal/domain"
)

// Store holds the sellable products in insertion order and settles orders
// against them. All mutations go through the store's lock so concurrent
// callers (the HTTP surface) cannot lose stock updates.
type Store struct {
	mu       sync.RWMutex
	products []*domain.Product
	logger   *zap.Logger
}

func New(products []*domain.Product, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{logger: logger}
	for _, p := range products {
		if p == nil {
			return nil, domain.NewInvalidConfigError("products", "cannot contain nil entries", nil)
		}
		s.products = append(s.products, p)
	}
	return s, nil
}

// AddProduct appends a product. Duplicate names are allowed on this path;
// only Merge enforces uniqueness.
func (s *Store) AddProduct(p *domain.Product) error {
	if p == nil {
		return domain.NewInvalidConfigError("product", "cannot be nil", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return nil
}

// RemoveProduct removes every product whose name matches exactly. Removing an
// absent name is a no-op.
func (s *Store) RemoveProduct(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.Name() != name {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

// Merge returns a new store with the receiver's products followed by other's.
// The first name collision aborts the merge with a duplicate-product error
// and leaves both stores untouched.
func (s *Store) Merge(other *Store) (*Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	names := make(map[string]struct{}, len(s.products))
	merged := make([]*domain.Product, 0, len(s.products)+len(other.products))
	for _, p := range s.products {
		names[p.Name()] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range other.products {
		if _, exists := names[p.Name()]; exists {
			return nil, domain.NewDuplicateProductError(p.Name())
		}
		names[p.Name()] = struct{}{}
		merged = append(merged, p)
	}
	return &Store{products: merged, logger: s.logger}, nil
}

// TotalStock sums the reported stock over all products. Non-stocked products
// report 0 and therefore do not contribute.
func (s *Store) TotalStock() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.products {
		total += p.Stock()
	}
	return total
}

// ListActive returns the currently active products in insertion order.
func (s *Store) ListActive() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the first product with the exact name, active or not.
func (s *Store) Find(name string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Len reports how many products the store holds, duplicates included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
