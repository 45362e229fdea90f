package dto

type OrderRequest struct {
	Lines []OrderRequestLine `json:"lines"`
}

type OrderRequestLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}
