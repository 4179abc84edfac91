package catalog

import (
	"instrument-model/internal/config"
	perrors "instrument-model/internal/errors"
	"instrument-model/pkg/products"
)

// BondFromSpec converts a configured bond into a products.Bond.
func BondFromSpec(spec config.BondSpec) (*products.Bond, error) {
	idType, err := products.ParseBondIDType(spec.IDType)
	if err != nil {
		return nil, err
	}
	maturity, err := products.ParseDate(spec.Maturity)
	if err != nil {
		return nil, perrors.Wrap(err, "maturity")
	}
	return products.NewBond(spec.ID, idType, spec.Ticker, spec.Coupon, maturity), nil
}

// SwapFromSpec converts a configured swap into a products.InterestRateSwap.
func SwapFromSpec(spec config.SwapSpec) (*products.InterestRateSwap, error) {
	var p parser

	fixedDC := parse(&p, spec.FixedDayCount, products.ParseDayCountConvention)
	floatDC := parse(&p, spec.FloatingDayCount, products.ParseDayCountConvention)
	freq := parse(&p, spec.PaymentFrequency, products.ParsePaymentFrequency)
	index := parse(&p, spec.Index, products.ParseFloatingIndex)
	tenor := parse(&p, spec.Tenor, products.ParseFloatingIndexTenor)
	effective := parse(&p, spec.Effective, products.ParseDate)
	termination := parse(&p, spec.Termination, products.ParseDate)
	ccy := parse(&p, spec.Currency, products.ParseCurrency)
	swapType := parse(&p, spec.SwapType, products.ParseSwapType)
	legType := parse(&p, spec.LegType, products.ParseSwapLegType)
	if p.err != nil {
		return nil, p.err
	}

	return products.NewInterestRateSwap(spec.ID, fixedDC, floatDC, freq, index, tenor,
		effective, termination, ccy, spec.TermYears, swapType, legType), nil
}

// parser keeps the first parse failure.
type parser struct {
	err error
}

func parse[T any](p *parser, s string, fn func(string) (T, error)) T {
	var zero T
	if p.err != nil {
		return zero
	}
	v, err := fn(s)
	if err != nil {
		p.err = err
		return zero
	}
	return v
}
