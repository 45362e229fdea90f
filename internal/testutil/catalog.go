package testutil

import (
	"testing"

	"github.com/elokrypt/bestbuy-2.0/internal/catalog"
	"github.com/elokrypt/bestbuy-2.0/internal/domain"
)

// MustProduct returns a builder that fails the test on a construction error,
// so multi-value constructor calls can be forwarded directly:
// MustProduct(t)(domain.NewProduct(...)).
func MustProduct(t *testing.T) func(*domain.Product, error) *domain.Product {
	return func(p *domain.Product, err error) *domain.Product {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build product: %v", err)
		}
		return p
	}
}

// MustPromotion is the promotion counterpart of MustProduct.
func MustPromotion(t *testing.T) func(*domain.Promotion, error) *domain.Promotion {
	return func(pr *domain.Promotion, err error) *domain.Promotion {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build promotion: %v", err)
		}
		return pr
	}
}

// NewTestStore builds the well-known seeded catalog used across tests:
// MacBook Air M2 (1450, 100, second-half-price), Bose QuietComfort Earbuds
// (250, 500, third-one-free), Google Pixel 7 (500, 250), Windows License
// (125, non-stocked, 30% off), Shipping (10, 250, max 1 per order).
func NewTestStore(t *testing.T) *catalog.Store {
	t.Helper()

	build := MustProduct(t)
	promo := MustPromotion(t)

	macbook := build(domain.NewProduct("MacBook Air M2", 1450, 100))
	earbuds := build(domain.NewProduct("Bose QuietComfort Earbuds", 250, 500))
	pixel := build(domain.NewProduct("Google Pixel 7", 500, 250))
	license := build(domain.NewNonStockedProduct("Windows License", 125))
	shipping := build(domain.NewLimitedProduct("Shipping", 10, 250, 1))

	macbook.SetPromotion(promo(domain.NewSecondHalfPrice("Second Half price!")))
	earbuds.SetPromotion(promo(domain.NewThirdOneFree("Third One Free!")))
	license.SetPromotion(promo(domain.NewPercentDiscount("30% Off!", 30)))

	store, err := catalog.New([]*domain.Product{macbook, earbuds, pixel, license, shipping}, nil)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return store
}
