package domain

import (
	"errors"
	"fmt"
)

// InvalidConfigError is returned when a product or promotion is constructed
// with malformed values. It is always fatal to the construction call.
type InvalidConfigError struct {
	Field  string
	Reason string
	Value  any
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

func NewInvalidConfigError(field, reason string, value any) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: reason, Value: value}
}

func IsInvalidConfigError(err error) bool {
	var ice *InvalidConfigError
	return errors.As(err, &ice)
}

// InvalidQuantityError is returned for a non-positive purchase quantity or a
// negative stock value.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: %d", e.Quantity)
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func IsInvalidQuantityError(err error) bool {
	var iqe *InvalidQuantityError
	return errors.As(err, &iqe)
}

// OutOfStockError is returned when a purchase asks for more units than a
// stock-tracked product holds.
type OutOfStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("store cannot provide %dx '%s' (available: %d)", e.Requested, e.Product, e.Available)
}

func NewOutOfStockError(product string, requested, available int) *OutOfStockError {
	return &OutOfStockError{Product: product, Requested: requested, Available: available}
}

func IsOutOfStockError(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}

// MaxQuantityError is returned when a purchase exceeds a limited product's
// per-order maximum.
type MaxQuantityError struct {
	Product   string
	Requested int
	Maximum   int
}

func (e *MaxQuantityError) Error() string {
	return fmt.Sprintf("'%s' is limited to %d per order (requested: %d)", e.Product, e.Maximum, e.Requested)
}

func NewMaxQuantityError(product string, requested, maximum int) *MaxQuantityError {
	return &MaxQuantityError{Product: product, Requested: requested, Maximum: maximum}
}

func IsMaxQuantityError(err error) bool {
	var mqe *MaxQuantityError
	return errors.As(err, &mqe)
}

// DuplicateProductError is returned when merging catalogs with overlapping
// product names.
type DuplicateProductError struct {
	Product string
}

func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product: name=%q already exists", e.Product)
}

func NewDuplicateProductError(product string) *DuplicateProductError {
	return &DuplicateProductError{Product: product}
}

func IsDuplicateProductError(err error) bool {
	var dpe *DuplicateProductError
	return errors.As(err, &dpe)
}
