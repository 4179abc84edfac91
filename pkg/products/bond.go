package products

import (
	"strconv"
)

// Bond is a fixed-coupon bond.
type Bond struct {
	identity
	bondIDType   BondIDType
	ticker       string
	coupon       float64
	maturityDate Date
}

// NewBond creates a Bond. The discriminant is always ProductTypeBond.
// Arguments are stored unchecked; call Validate for presence checks.
func NewBond(productID string, bondIDType BondIDType, ticker string, coupon float64, maturityDate Date) *Bond {
	return &Bond{
		identity:     identity{productID: productID, productType: ProductTypeBond},
		bondIDType:   bondIDType,
		ticker:       ticker,
		coupon:       coupon,
		maturityDate: maturityDate,
	}
}

// GetTicker returns the descriptive short name.
func (b *Bond) GetTicker() string {
	return b.ticker
}

// GetCoupon returns the annual coupon as a decimal fraction (0.025 == 2.5%).
func (b *Bond) GetCoupon() float64 {
	return b.coupon
}

// GetMaturityDate returns the date principal is repaid.
func (b *Bond) GetMaturityDate() Date {
	return b.maturityDate
}

// GetBondIdType returns the identifier scheme.
func (b *Bond) GetBondIdType() BondIDType {
	return b.bondIDType
}

// String renders "<ticker> <coupon> <maturityDate>".
func (b *Bond) String() string {
	return b.ticker + " " + FormatCoupon(b.coupon) + " " + b.maturityDate.String()
}

// Validate checks that every field is present.
func (b *Bond) Validate() error {
	if err := b.identity.validate(); err != nil {
		return err
	}
	if err := checkEnum("BondIDType", b.bondIDType); err != nil {
		return err
	}
	if b.ticker == "" {
		return newMissing("ticker", b.ticker)
	}
	return b.maturityDate.validate("maturityDate")
}

// FormatCoupon renders a coupon with six significant digits, switching to
// exponent form for very small or large values (0.025 -> "0.025").
func FormatCoupon(c float64) string {
	return strconv.FormatFloat(c, 'g', 6, 64)
}
