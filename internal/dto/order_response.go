package dto

import "time"

type OrderResponse struct {
	TraceID    string           `json:"traceId"`
	OrderID    string           `json:"orderId"`
	Status     string           `json:"status"`
	TotalPrice float64          `json:"totalPrice"`
	Successes  []LineSuccessDTO `json:"successes"`
	Failures   []LineFailureDTO `json:"failures"`
	Timestamp  time.Time        `json:"timestamp"`
}

type LineSuccessDTO struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type LineFailureDTO struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
	Detail   string `json:"detail,omitempty"`
}
