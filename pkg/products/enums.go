package products

import (
	"strings"

	perrors "instrument-model/internal/errors"
)

// Enumeration values are the member names. String returns the display text
// and returns "" for any value outside the declared members.

// BondIDType describes how a bond's identifier is interpreted externally.
type BondIDType string

const (
	CUSIP BondIDType = "CUSIP"
	ISIN  BondIDType = "ISIN"
)

var BondIDTypes = []BondIDType{CUSIP, ISIN}

func (t BondIDType) String() string {
	switch t {
	case CUSIP:
		return "CUSIP"
	case ISIN:
		return "ISIN"
	default:
		return ""
	}
}

// Valid reports whether t is a declared BondIDType.
func (t BondIDType) Valid() bool { return t.String() != "" }

// ParseBondIDType accepts a member name or its display text.
func ParseBondIDType(s string) (BondIDType, error) {
	return parseEnum("BondIDType", s, BondIDTypes)
}

// DayCountConvention is the accrual basis of a swap leg.
type DayCountConvention string

const (
	ThirtyThreeSixty DayCountConvention = "THIRTY_THREE_SIXTY"
	ActThreeSixty    DayCountConvention = "ACT_THREE_SIXTY"
)

var DayCountConventions = []DayCountConvention{ThirtyThreeSixty, ActThreeSixty}

func (c DayCountConvention) String() string {
	switch c {
	case ThirtyThreeSixty:
		return "30/360"
	case ActThreeSixty:
		return "Act/360"
	default:
		return ""
	}
}

// Valid reports whether c is a declared DayCountConvention.
func (c DayCountConvention) Valid() bool { return c.String() != "" }

// ParseDayCountConvention accepts a member name or its display text.
func ParseDayCountConvention(s string) (DayCountConvention, error) {
	return parseEnum("DayCountConvention", s, DayCountConventions)
}

// PaymentFrequency is how often the fixed leg pays per year.
type PaymentFrequency string

const (
	Quarterly  PaymentFrequency = "QUARTERLY"
	SemiAnnual PaymentFrequency = "SEMI_ANNUAL"
	Annual     PaymentFrequency = "ANNUAL"
)

var PaymentFrequencies = []PaymentFrequency{Quarterly, SemiAnnual, Annual}

func (f PaymentFrequency) String() string {
	switch f {
	case Quarterly:
		return "Quarterly"
	case SemiAnnual:
		return "Semi-Annual"
	case Annual:
		return "Annual"
	default:
		return ""
	}
}

// Valid reports whether f is a declared PaymentFrequency.
func (f PaymentFrequency) Valid() bool { return f.String() != "" }

// ParsePaymentFrequency accepts a member name or its display text.
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	return parseEnum("PaymentFrequency", s, PaymentFrequencies)
}

// FloatingIndex is the reference rate of the floating leg.
type FloatingIndex string

const (
	LIBOR   FloatingIndex = "LIBOR"
	EURIBOR FloatingIndex = "EURIBOR"
)

var FloatingIndexes = []FloatingIndex{LIBOR, EURIBOR}

func (i FloatingIndex) String() string {
	switch i {
	case LIBOR:
		return "LIBOR"
	case EURIBOR:
		return "EURIBOR"
	default:
		return ""
	}
}

// Valid reports whether i is a declared FloatingIndex.
func (i FloatingIndex) Valid() bool { return i.String() != "" }

// ParseFloatingIndex accepts a member name or its display text.
func ParseFloatingIndex(s string) (FloatingIndex, error) {
	return parseEnum("FloatingIndex", s, FloatingIndexes)
}

// FloatingIndexTenor is the reset period of the floating index.
type FloatingIndexTenor string

const (
	Tenor1M  FloatingIndexTenor = "1M"
	Tenor3M  FloatingIndexTenor = "3M"
	Tenor6M  FloatingIndexTenor = "6M"
	Tenor12M FloatingIndexTenor = "12M"
)

var FloatingIndexTenors = []FloatingIndexTenor{Tenor1M, Tenor3M, Tenor6M, Tenor12M}

func (t FloatingIndexTenor) String() string {
	switch t {
	case Tenor1M:
		return "1m"
	case Tenor3M:
		return "3m"
	case Tenor6M:
		return "6m"
	case Tenor12M:
		return "12m"
	default:
		return ""
	}
}

// Valid reports whether t is a declared FloatingIndexTenor.
func (t FloatingIndexTenor) Valid() bool { return t.String() != "" }

// ParseFloatingIndexTenor accepts a member name or its display text.
func ParseFloatingIndexTenor(s string) (FloatingIndexTenor, error) {
	return parseEnum("FloatingIndexTenor", s, FloatingIndexTenors)
}

// Currency of a swap.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

var Currencies = []Currency{USD, EUR, GBP}

func (c Currency) String() string {
	switch c {
	case USD:
		return "USD"
	case EUR:
		return "EUR"
	case GBP:
		return "GBP"
	default:
		return ""
	}
}

// Valid reports whether c is a declared Currency.
func (c Currency) Valid() bool { return c.String() != "" }

// ParseCurrency accepts a member name or its display text.
func ParseCurrency(s string) (Currency, error) {
	return parseEnum("Currency", s, Currencies)
}

// SwapType is the settlement or structural convention of a swap.
type SwapType string

const (
	Standard SwapType = "STANDARD"
	Forward  SwapType = "FORWARD"
	IMM      SwapType = "IMM"
	MAC      SwapType = "MAC"
	Basis    SwapType = "BASIS"
)

var SwapTypes = []SwapType{Standard, Forward, IMM, MAC, Basis}

func (t SwapType) String() string {
	switch t {
	case Standard:
		return "Standard"
	case Forward:
		return "Forward"
	case IMM:
		return "IMM"
	case MAC:
		return "MAC"
	case Basis:
		return "Basis"
	default:
		return ""
	}
}

// Valid reports whether t is a declared SwapType.
func (t SwapType) Valid() bool { return t.String() != "" }

// ParseSwapType accepts a member name or its display text.
func ParseSwapType(s string) (SwapType, error) {
	return parseEnum("SwapType", s, SwapTypes)
}

// SwapLegType distinguishes single-leg trades from multi-leg spreads.
type SwapLegType string

const (
	Outright SwapLegType = "OUTRIGHT"
	Curve    SwapLegType = "CURVE"
	Fly      SwapLegType = "FLY"
)

var SwapLegTypes = []SwapLegType{Outright, Curve, Fly}

func (t SwapLegType) String() string {
	switch t {
	case Outright:
		return "Outright"
	case Curve:
		return "Curve"
	case Fly:
		return "Fly"
	default:
		return ""
	}
}

// Valid reports whether t is a declared SwapLegType.
func (t SwapLegType) Valid() bool { return t.String() != "" }

// ParseSwapLegType accepts a member name or its display text.
func ParseSwapLegType(s string) (SwapLegType, error) {
	return parseEnum("SwapLegType", s, SwapLegTypes)
}

type enumValue interface {
	~string
	String() string
}

// parseEnum matches s case-insensitively against member names and display text.
func parseEnum[T enumValue](enum, s string, members []T) (T, error) {
	s = strings.TrimSpace(s)
	for _, m := range members {
		if strings.EqualFold(string(m), s) || strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	var zero T
	return zero, perrors.NewEnumError(enum, s)
}

// checkEnum returns an EnumError when v is outside its declared members.
func checkEnum[T enumValue](enum string, v T) error {
	if v.String() == "" {
		return perrors.NewEnumError(enum, string(v))
	}
	return nil
}
