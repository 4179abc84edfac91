package products

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: every getter returns exactly the constructor argument and the
// discriminant always matches the constructed variant.
func TestProperty_BondAccessorIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Bond getters return constructor arguments", prop.ForAll(
		func(id, ticker string, coupon float64, idTypeIdx, year, month, day int) bool {
			idType := BondIDTypes[idTypeIdx]
			maturity := NewDate(year, time.Month(month), day)
			b := NewBond(id, idType, ticker, coupon, maturity)

			return b.GetProductType() == ProductTypeBond &&
				b.GetProductId() == id &&
				b.GetBondIdType() == idType &&
				b.GetTicker() == ticker &&
				b.GetCoupon() == coupon &&
				b.GetMaturityDate() == maturity
		},
		gen.AlphaString(),
		gen.AnyString(),
		gen.Float64Range(-1, 2),
		gen.IntRange(0, len(BondIDTypes)-1),
		gen.IntRange(1, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.Property("Bond rendering ends with the maturity date", prop.ForAll(
		func(ticker string, coupon float64, year, month, day int) bool {
			maturity := NewDate(year, time.Month(month), day)
			b := NewBond("id", CUSIP, ticker, coupon, maturity)
			want := ticker + " " + FormatCoupon(coupon) + " " + maturity.String()
			return b.String() == want && b.String() == b.String()
		},
		gen.AlphaString(),
		gen.Float64Range(-1, 2),
		gen.IntRange(1, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.TestingRun(t)
}

// Property: swap construction is an identity on every field and rendering
// never mutates the record.
func TestProperty_SwapAccessorIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("InterestRateSwap getters return constructor arguments", prop.ForAll(
		func(id string, enumIdx []int, termYears, effYear, termYear int) bool {
			fixedDC := DayCountConventions[enumIdx[0]%len(DayCountConventions)]
			floatDC := DayCountConventions[enumIdx[1]%len(DayCountConventions)]
			freq := PaymentFrequencies[enumIdx[2]%len(PaymentFrequencies)]
			index := FloatingIndexes[enumIdx[3]%len(FloatingIndexes)]
			tenor := FloatingIndexTenors[enumIdx[4]%len(FloatingIndexTenors)]
			ccy := Currencies[enumIdx[5]%len(Currencies)]
			swapType := SwapTypes[enumIdx[6]%len(SwapTypes)]
			legType := SwapLegTypes[enumIdx[7]%len(SwapLegTypes)]
			eff := NewDate(effYear, time.March, 20)
			term := NewDate(termYear, time.March, 20)

			s := NewInterestRateSwap(id, fixedDC, floatDC, freq, index, tenor, eff, term, ccy, termYears, swapType, legType)
			first := s.String()
			rendered, err := Render(s)

			return err == nil &&
				rendered == first &&
				s.String() == first &&
				s.GetProductType() == ProductTypeInterestRateSwap &&
				s.GetProductId() == id &&
				s.GetFixedLegDayCountConvention() == fixedDC &&
				s.GetFloatingLegDayCountConvention() == floatDC &&
				s.GetFixedLegPaymentFrequency() == freq &&
				s.GetFloatingIndex() == index &&
				s.GetFloatingIndexTenor() == tenor &&
				s.GetEffectiveDate() == eff &&
				s.GetTerminationDate() == term &&
				s.GetCurrency() == ccy &&
				s.GetTermYears() == termYears &&
				s.GetSwapType() == swapType &&
				s.GetSwapLegType() == legType &&
				strings.Contains(first, " "+tenor.String()+index.String()+" ") &&
				strings.Contains(first, " "+strconv.Itoa(termYears)+"yrs ")
		},
		gen.AlphaString(),
		gen.SliceOfN(8, gen.IntRange(0, 100)),
		gen.IntRange(-50, 50),
		gen.IntRange(1900, 2100),
		gen.IntRange(1900, 2100),
	))

	properties.TestingRun(t)
}

// Property: dates render as un-padded year, two-digit month and two-digit
// day, and ParseDate inverts String for any year width or sign.
func TestProperty_DateRendering(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("YYYY-MM-DD with zero padded month and day", prop.ForAll(
		func(year, month, day int) bool {
			s := NewDate(year, time.Month(month), day).String()
			parts := strings.Split(s, "-")
			if len(parts) != 3 || len(parts[1]) != 2 || len(parts[2]) != 2 {
				t.Logf("unexpected layout %q", s)
				return false
			}
			y, _ := strconv.Atoi(parts[0])
			m, _ := strconv.Atoi(parts[1])
			d, _ := strconv.Atoi(parts[2])
			return y == year && m == month && d == day && parts[0] == strconv.Itoa(year)
		},
		gen.IntRange(1, 99999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 31),
	))

	properties.Property("ParseDate inverts String", prop.ForAll(
		func(year, month, day int) bool {
			d := NewDate(year, time.Month(month), day)
			if !d.Valid() {
				return true
			}
			parsed, err := ParseDate(d.String())
			return err == nil && parsed == d
		},
		gen.IntRange(-9999, 999999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 31),
	))

	properties.TestingRun(t)
}

// Property: any value outside a declared enumeration renders as "" and
// fails strict rendering.
func TestProperty_UndeclaredEnumValues(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("undeclared currency is reported", prop.ForAll(
		func(code string) bool {
			ccy := Currency("X" + code)
			s := NewInterestRateSwap("id", ThirtyThreeSixty, ActThreeSixty, Annual, LIBOR, Tenor6M,
				NewDate(2025, 1, 1), NewDate(2026, 1, 1), ccy, 1, Standard, Outright)
			_, err := Render(s)
			return ccy.String() == "" && !ccy.Valid() && err != nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
