package product

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

type ProductDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Unlimited   bool    `json:"unlimited"`
	Maximum     int     `json:"maximum,omitempty"`
	Promotion   string  `json:"promotion,omitempty"`
	Description string  `json:"description"`
}

type StockResponse struct {
	TotalStock int `json:"totalStock"`
}
