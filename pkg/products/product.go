// Package products defines the immutable bond and interest rate swap
// reference-data records shared by pricing, risk and booking components.
//
// Product is a closed set: only *Bond and *InterestRateSwap implement it.
// Callers switch on GetProductType or type-switch on the concrete variant
// before reading variant fields.
package products

import (
	perrors "instrument-model/internal/errors"
)

// ProductType is the discriminant selecting the concrete product variant.
type ProductType string

const (
	ProductTypeBond             ProductType = "BOND"
	ProductTypeInterestRateSwap ProductType = "INTEREST_RATE_SWAP"
)

// ProductTypes lists every declared ProductType.
var ProductTypes = []ProductType{ProductTypeBond, ProductTypeInterestRateSwap}

// Valid reports whether t is a declared ProductType.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeBond, ProductTypeInterestRateSwap:
		return true
	default:
		return false
	}
}

// Product is the identity contract every instrument exposes.
type Product interface {
	GetProductId() string
	GetProductType() ProductType
	String() string
	Validate() error

	sealed()
}

// identity carries the fields shared by every variant. It is set once by
// the variant constructor and never reassigned.
type identity struct {
	productID   string
	productType ProductType
}

// GetProductId returns the identifier supplied at construction.
func (i identity) GetProductId() string {
	return i.productID
}

// GetProductType returns the variant discriminant.
func (i identity) GetProductType() ProductType {
	return i.productType
}

func (i identity) sealed() {}

func (i identity) validate() error {
	if i.productID == "" {
		return perrors.NewValidationError("productId", i.productID, "must not be empty", nil)
	}
	return nil
}

// Errors re-exported for callers outside this module.
type (
	EnumError       = perrors.EnumError
	ValidationError = perrors.ValidationError
)

var (
	ErrInvalidEnumValue   = perrors.ErrInvalidEnumValue
	ErrMissingField       = perrors.ErrMissingField
	ErrInvalidDate        = perrors.ErrInvalidDate
	ErrUnknownProductType = perrors.ErrUnknownProductType
)
