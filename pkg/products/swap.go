package products

import (
	"strconv"
	"strings"

	perrors "instrument-model/internal/errors"
)

// InterestRateSwap is a fixed/floating interest rate swap.
type InterestRateSwap struct {
	identity
	fixedLegDayCountConvention    DayCountConvention
	floatingLegDayCountConvention DayCountConvention
	fixedLegPaymentFrequency      PaymentFrequency
	floatingIndex                 FloatingIndex
	floatingIndexTenor            FloatingIndexTenor
	effectiveDate                 Date
	terminationDate               Date
	currency                      Currency
	termYears                     int
	swapType                      SwapType
	swapLegType                   SwapLegType
}

// NewInterestRateSwap creates an InterestRateSwap. The discriminant is always
// ProductTypeInterestRateSwap. termYears is not reconciled against the dates.
func NewInterestRateSwap(
	productID string,
	fixedLegDayCountConvention DayCountConvention,
	floatingLegDayCountConvention DayCountConvention,
	fixedLegPaymentFrequency PaymentFrequency,
	floatingIndex FloatingIndex,
	floatingIndexTenor FloatingIndexTenor,
	effectiveDate Date,
	terminationDate Date,
	currency Currency,
	termYears int,
	swapType SwapType,
	swapLegType SwapLegType,
) *InterestRateSwap {
	return &InterestRateSwap{
		identity:                      identity{productID: productID, productType: ProductTypeInterestRateSwap},
		fixedLegDayCountConvention:    fixedLegDayCountConvention,
		floatingLegDayCountConvention: floatingLegDayCountConvention,
		fixedLegPaymentFrequency:      fixedLegPaymentFrequency,
		floatingIndex:                 floatingIndex,
		floatingIndexTenor:            floatingIndexTenor,
		effectiveDate:                 effectiveDate,
		terminationDate:               terminationDate,
		currency:                      currency,
		termYears:                     termYears,
		swapType:                      swapType,
		swapLegType:                   swapLegType,
	}
}

// GetFixedLegDayCountConvention returns the fixed leg day count convention.
func (s *InterestRateSwap) GetFixedLegDayCountConvention() DayCountConvention {
	return s.fixedLegDayCountConvention
}

// GetFloatingLegDayCountConvention returns the floating leg day count convention.
func (s *InterestRateSwap) GetFloatingLegDayCountConvention() DayCountConvention {
	return s.floatingLegDayCountConvention
}

// GetFixedLegPaymentFrequency returns how often the fixed leg pays.
func (s *InterestRateSwap) GetFixedLegPaymentFrequency() PaymentFrequency {
	return s.fixedLegPaymentFrequency
}

// GetFloatingIndex returns the reference rate of the floating leg.
func (s *InterestRateSwap) GetFloatingIndex() FloatingIndex {
	return s.floatingIndex
}

// GetFloatingIndexTenor returns the tenor of the floating index.
func (s *InterestRateSwap) GetFloatingIndexTenor() FloatingIndexTenor {
	return s.floatingIndexTenor
}

// GetEffectiveDate returns the date accrual starts.
func (s *InterestRateSwap) GetEffectiveDate() Date {
	return s.effectiveDate
}

// GetTerminationDate returns the date the swap ends.
func (s *InterestRateSwap) GetTerminationDate() Date {
	return s.terminationDate
}

// GetCurrency returns the notional currency.
func (s *InterestRateSwap) GetCurrency() Currency {
	return s.currency
}

// GetTermYears returns the tenor in whole years.
func (s *InterestRateSwap) GetTermYears() int {
	return s.termYears
}

// GetSwapType returns the swap classification.
func (s *InterestRateSwap) GetSwapType() SwapType {
	return s.swapType
}

// GetSwapLegType returns the leg structure.
func (s *InterestRateSwap) GetSwapLegType() SwapLegType {
	return s.swapLegType
}

// String renders the swap on one line, e.g.
//
//	fixedDayCount:30/360 floatingDayCount:Act/360 paymentFreq:Semi-Annual 3mLIBOR effective:2025-01-15 termination:2030-01-15 USD 5yrs Standard Outright
//
// Undeclared enumeration values render as empty fragments.
func (s *InterestRateSwap) String() string {
	var sb strings.Builder
	sb.WriteString("fixedDayCount:")
	sb.WriteString(s.fixedLegDayCountConvention.String())
	sb.WriteString(" floatingDayCount:")
	sb.WriteString(s.floatingLegDayCountConvention.String())
	sb.WriteString(" paymentFreq:")
	sb.WriteString(s.fixedLegPaymentFrequency.String())
	sb.WriteByte(' ')
	sb.WriteString(s.floatingIndexTenor.String())
	sb.WriteString(s.floatingIndex.String())
	sb.WriteString(" effective:")
	sb.WriteString(s.effectiveDate.String())
	sb.WriteString(" termination:")
	sb.WriteString(s.terminationDate.String())
	sb.WriteByte(' ')
	sb.WriteString(s.currency.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.termYears))
	sb.WriteString("yrs ")
	sb.WriteString(s.swapType.String())
	sb.WriteByte(' ')
	sb.WriteString(s.swapLegType.String())
	return sb.String()
}

// checkEnums returns the first undeclared enumeration value, in render order.
func (s *InterestRateSwap) checkEnums() error {
	checks := []error{
		checkEnum("DayCountConvention", s.fixedLegDayCountConvention),
		checkEnum("DayCountConvention", s.floatingLegDayCountConvention),
		checkEnum("PaymentFrequency", s.fixedLegPaymentFrequency),
		checkEnum("FloatingIndexTenor", s.floatingIndexTenor),
		checkEnum("FloatingIndex", s.floatingIndex),
		checkEnum("Currency", s.currency),
		checkEnum("SwapType", s.swapType),
		checkEnum("SwapLegType", s.swapLegType),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every field is present. Date ordering and
// termYears are not checked.
func (s *InterestRateSwap) Validate() error {
	if err := s.identity.validate(); err != nil {
		return err
	}
	if err := s.checkEnums(); err != nil {
		return err
	}
	if err := s.effectiveDate.validate("effectiveDate"); err != nil {
		return err
	}
	return s.terminationDate.validate("terminationDate")
}

func newMissing(field string, value interface{}) error {
	return perrors.NewValidationError(field, value, "must not be empty", nil)
}
