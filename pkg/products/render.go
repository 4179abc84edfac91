package products

import (
	perrors "instrument-model/internal/errors"
)

// Render returns the canonical display line for p. Unlike String, it fails
// with an *EnumError (wrapping ErrInvalidEnumValue) instead of emitting an
// empty fragment for an undeclared enumeration value.
func Render(p Product) (string, error) {
	switch v := p.(type) {
	case *Bond:
		// the rendered fields carry no enumerations
		if v == nil {
			break
		}
		return v.String(), nil
	case *InterestRateSwap:
		if v == nil {
			break
		}
		if err := v.checkEnums(); err != nil {
			return "", err
		}
		return v.String(), nil
	}
	return "", perrors.Wrapf(perrors.ErrUnknownProductType, "render %T", p)
}

// RenderLenient returns p.String(), or "" for a nil product.
func RenderLenient(p Product) string {
	switch v := p.(type) {
	case *Bond:
		if v != nil {
			return v.String()
		}
	case *InterestRateSwap:
		if v != nil {
			return v.String()
		}
	}
	return ""
}

// RenderWith dispatches to Render or RenderLenient. Both policies reject a
// nil product, typed or not, with ErrUnknownProductType.
func RenderWith(p Product, strict bool) (string, error) {
	if strict {
		return Render(p)
	}
	if isNil(p) {
		return "", perrors.Wrapf(perrors.ErrUnknownProductType, "render %T", p)
	}
	return RenderLenient(p), nil
}

func isNil(p Product) bool {
	switch v := p.(type) {
	case *Bond:
		return v == nil
	case *InterestRateSwap:
		return v == nil
	}
	return p == nil
}
