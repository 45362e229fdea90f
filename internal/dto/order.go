package dto

type OrderStatus string

const (
	OrderAllSuccess OrderStatus = "ALL_SUCCESS"
	OrderPartial    OrderStatus = "PARTIAL"
	OrderAllFailed  OrderStatus = "ALL_FAILED"
)

type FailureReason string

const (
	ReasonNotFound    FailureReason = "NOT_FOUND"
	ReasonInactive    FailureReason = "PRODUCT_INACTIVE"
	ReasonOutOfStock  FailureReason = "OUT_OF_STOCK"
	ReasonMaxExceeded FailureReason = "MAX_EXCEEDED"
)

type LineSuccess struct {
	Product  string
	Quantity int
	Total    float64
}

type LineFailure struct {
	Product  string
	Quantity int
	Reason   FailureReason
	Detail   string
}

type OrderResult struct {
	OrderID    string
	Status     OrderStatus
	TotalPrice float64
	Successes  []LineSuccess
	Failures   []LineFailure
}
