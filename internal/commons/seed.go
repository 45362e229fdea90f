package commons

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/elokrypt/bestbuy-2.0/internal/catalog"
	"github.com/elokrypt/bestbuy-2.0/internal/domain"
)

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name      string         `yaml:"name"`
	Price     float64        `yaml:"price"`
	Kind      string         `yaml:"kind"` // standard (default), non_stocked, limited
	Stock     int            `yaml:"stock"`
	Maximum   int            `yaml:"maximum"`
	Promotion *seedPromotion `yaml:"promotion"`
}

type seedPromotion struct {
	Kind    string  `yaml:"kind"` // second_half_price, third_one_free, percent_discount
	Name    string  `yaml:"name"`
	Percent float64 `yaml:"percent"`
}

// LoadCatalog builds a catalog from a YAML seed file, or from the built-in
// seed when path is empty.
func LoadCatalog(path string, logger *zap.Logger) (*catalog.Store, error) {
	if path == "" {
		return DefaultCatalog(logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	return buildCatalog(seed.Products, logger)
}

// DefaultCatalog seeds the stock the storefront starts with.
func DefaultCatalog(logger *zap.Logger) (*catalog.Store, error) {
	return buildCatalog([]seedProduct{
		{Name: "MacBook Air M2", Price: 1450, Stock: 100,
			Promotion: &seedPromotion{Kind: "second_half_price", Name: "Second Half price!"}},
		{Name: "Bose QuietComfort Earbuds", Price: 250, Stock: 500,
			Promotion: &seedPromotion{Kind: "third_one_free", Name: "Third One Free!"}},
		{Name: "Google Pixel 7", Price: 500, Stock: 250},
		{Name: "Windows License", Price: 125, Kind: "non_stocked",
			Promotion: &seedPromotion{Kind: "percent_discount", Name: "30% Off!", Percent: 30}},
		{Name: "Shipping", Price: 10, Kind: "limited", Stock: 250, Maximum: 1},
	}, logger)
}

func buildCatalog(seed []seedProduct, logger *zap.Logger) (*catalog.Store, error) {
	products := make([]*domain.Product, 0, len(seed))
	for _, sp := range seed {
		p, err := buildProduct(sp)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return catalog.New(products, logger)
}

func buildProduct(sp seedProduct) (*domain.Product, error) {
	var (
		p   *domain.Product
		err error
	)
	switch sp.Kind {
	case "", "standard":
		p, err = domain.NewProduct(sp.Name, sp.Price, sp.Stock)
	case "non_stocked":
		p, err = domain.NewNonStockedProduct(sp.Name, sp.Price)
	case "limited":
		p, err = domain.NewLimitedProduct(sp.Name, sp.Price, sp.Stock, sp.Maximum)
	default:
		return nil, domain.NewInvalidConfigError("kind", "unknown product kind", sp.Kind)
	}
	if err != nil {
		return nil, err
	}

	if sp.Promotion != nil {
		pr, err := buildPromotion(*sp.Promotion)
		if err != nil {
			return nil, err
		}
		p.SetPromotion(pr)
	}
	return p, nil
}

func buildPromotion(sp seedPromotion) (*domain.Promotion, error) {
	switch sp.Kind {
	case "second_half_price":
		return domain.NewSecondHalfPrice(sp.Name)
	case "third_one_free":
		return domain.NewThirdOneFree(sp.Name)
	case "percent_discount":
		return domain.NewPercentDiscount(sp.Name, sp.Percent)
	default:
		return nil, domain.NewInvalidConfigError("promotion.kind", "unknown promotion kind", sp.Kind)
	}
}
