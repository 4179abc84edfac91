// Package errors provides custom error types for instrument construction,
// rendering and catalog loading.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidEnumValue   = errors.New("invalid enumeration value")
	ErrMissingField       = errors.New("required field missing")
	ErrInvalidDate        = errors.New("invalid calendar date")
	ErrUnknownProductType = errors.New("unknown product type")
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProduct   = errors.New("duplicate product id")
	ErrConfigInvalid      = errors.New("invalid configuration")
)

// EnumError reports a value outside an enumeration's declared members.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

func (e *EnumError) Unwrap() error {
	return ErrInvalidEnumValue
}

// NewEnumError creates a new EnumError.
func NewEnumError(enum, value string) *EnumError {
	return &EnumError{
		Enum:  enum,
		Value: value,
	}
}

// ValidationError represents a field presence or format failure.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// Unwrap returns the underlying cause, ErrMissingField when none was given.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrMissingField
	}
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// CatalogError ties a failure to the catalog entry that caused it.
type CatalogError struct {
	Kind      string // "bond" | "swap"
	Index     int
	ProductID string
	Err       error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error [%s #%d %s]: %v", e.Kind, e.Index, e.ProductID, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(kind string, index int, productID string, err error) *CatalogError {
	return &CatalogError{
		Kind:      kind,
		Index:     index,
		ProductID: productID,
		Err:       err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
