package domain

import (
	"fmt"
	"sync"
)

type ProductKind string

const (
	KindStandard   ProductKind = "STANDARD"
	KindNonStocked ProductKind = "NON_STOCKED"
	KindLimited    ProductKind = "LIMITED"
)

// Product is a sellable catalog item. The kind tag selects the stock
// semantics: standard products track finite stock, non-stocked products never
// run out, limited products additionally cap the quantity per single
// purchase. Name and price are immutable after construction; the mutable
// state (stock, activation, promotion) is guarded by the product's own lock
// so readers holding a product pointer stay safe while an order settles.
type Product struct {
	name    string
	price   float64
	kind    ProductKind
	maximum int

	mu          sync.RWMutex
	stock       int
	deactivated bool
	promotion   *Promotion
}

func NewProduct(name string, price float64, stock int) (*Product, error) {
	return newProduct(name, price, stock, KindStandard, 0)
}

func NewNonStockedProduct(name string, price float64) (*Product, error) {
	return newProduct(name, price, 0, KindNonStocked, 0)
}

func NewLimitedProduct(name string, price float64, stock, maximum int) (*Product, error) {
	if maximum < 1 {
		return nil, NewInvalidConfigError("maximum", "must be at least 1", maximum)
	}
	return newProduct(name, price, stock, KindLimited, maximum)
}

func newProduct(name string, price float64, stock int, kind ProductKind, maximum int) (*Product, error) {
	if name == "" {
		return nil, NewInvalidConfigError("name", "cannot be empty", name)
	}
	if price < 0 {
		return nil, NewInvalidConfigError("price", "cannot be negative", price)
	}
	if stock < 0 {
		return nil, NewInvalidConfigError("stock", "cannot be negative", stock)
	}
	return &Product{name: name, price: price, kind: kind, stock: stock, maximum: maximum}, nil
}

func (p *Product) Name() string      { return p.name }
func (p *Product) Price() float64    { return p.price }
func (p *Product) Kind() ProductKind { return p.kind }
func (p *Product) Maximum() int      { return p.maximum }

// Stock reports the remaining stock. Non-stocked products report 0; they
// never run out and contribute nothing to catalog totals.
func (p *Product) Stock() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stockLocked()
}

func (p *Product) stockLocked() int {
	if p.kind == KindNonStocked {
		return 0
	}
	return p.stock
}

// Active is derived from stock at read time, so stock and activity cannot
// disagree. Deactivate sets a manual override; non-stocked products are
// active unless overridden.
func (p *Product) Active() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.deactivated {
		return false
	}
	if p.kind == KindNonStocked {
		return true
	}
	return p.stock > 0
}

func (p *Product) Activate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deactivated = false
}

func (p *Product) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deactivated = true
}

func (p *Product) Promotion() *Promotion {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.promotion
}

func (p *Product) SetPromotion(pr *Promotion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promotion = pr
}

func (p *Product) ClearPromotion() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promotion = nil
}

// SetStock replaces the remaining stock. Setting it below 1 leaves the
// product inactive through the derived activity check. Non-stocked products
// ignore the new value.
func (p *Product) SetStock(n int) error {
	if n < 0 {
		return NewInvalidQuantityError(n)
	}
	if p.kind == KindNonStocked {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stock = n
	return nil
}

// Purchase validates the requested quantity, prices it through the attached
// promotion if any, and decrements stock. Checks run in order: quantity,
// per-order maximum, stock.
func (p *Product) Purchase(quantity int) (float64, error) {
	if quantity < 1 {
		return 0, NewInvalidQuantityError(quantity)
	}
	if p.kind == KindLimited && quantity > p.maximum {
		return 0, NewMaxQuantityError(p.name, quantity, p.maximum)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.kind != KindNonStocked {
		if quantity > p.stock {
			return 0, NewOutOfStockError(p.name, quantity, p.stock)
		}
		p.stock -= quantity
	}
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity), nil
	}
	return float64(quantity) * p.price, nil
}

// Describe returns a human-readable one-line summary.
func (p *Product) Describe() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var qty string
	switch p.kind {
	case KindNonStocked:
		qty = "Quantity: Unlimited"
	case KindLimited:
		qty = fmt.Sprintf("Quantity: %d, Limited to %d per order!", p.stock, p.maximum)
	default:
		qty = fmt.Sprintf("Quantity: %d", p.stock)
	}
	s := fmt.Sprintf("%s, Price: $%g, %s", p.name, p.price, qty)
	if p.promotion != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promotion.Name)
	}
	return s
}
