package domain

type PromotionKind string

const (
	PromoSecondHalfPrice PromotionKind = "SECOND_HALF_PRICE"
	PromoThirdOneFree    PromotionKind = "THIRD_ONE_FREE"
	PromoPercentDiscount PromotionKind = "PERCENT_DISCOUNT"
)

// Promotion is a pure pricing strategy: a kind tag plus its parameters.
// Apply is deterministic and side-effect free. Quantity validation is the
// product's responsibility, not the strategy's.
type Promotion struct {
	Name    string
	Kind    PromotionKind
	Percent float64
}

func NewSecondHalfPrice(name string) (*Promotion, error) {
	if name == "" {
		return nil, NewInvalidConfigError("name", "cannot be empty", name)
	}
	return &Promotion{Name: name, Kind: PromoSecondHalfPrice}, nil
}

func NewThirdOneFree(name string) (*Promotion, error) {
	if name == "" {
		return nil, NewInvalidConfigError("name", "cannot be empty", name)
	}
	return &Promotion{Name: name, Kind: PromoThirdOneFree}, nil
}

func NewPercentDiscount(name string, percent float64) (*Promotion, error) {
	if name == "" {
		return nil, NewInvalidConfigError("name", "cannot be empty", name)
	}
	if percent <= 0 {
		return nil, NewInvalidConfigError("percent", "must be positive", percent)
	}
	return &Promotion{Name: name, Kind: PromoPercentDiscount, Percent: percent}, nil
}

// Apply returns the discounted total for quantity units at unitPrice.
func (pr *Promotion) Apply(unitPrice float64, quantity int) float64 {
	switch pr.Kind {
	case PromoSecondHalfPrice:
		// for every pair one unit is full price, one half price; an odd
		// unit stays full price
		half := quantity / 2
		full := quantity - half
		return float64(full)*unitPrice + float64(half)*unitPrice/2
	case PromoThirdOneFree:
		free := quantity / 3
		return float64(quantity-free) * unitPrice
	case PromoPercentDiscount:
		return float64(quantity) * unitPrice * (1 - pr.Percent/100)
	}
	return float64(quantity) * unitPrice
}
