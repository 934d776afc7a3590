package controllers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingName        = errors.New("dish name is required")
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidPrice       = errors.New("price must be a number greater than zero")
)

// Field names a form input on the add-dish screen
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
)

var fieldOrder = []Field{FieldName, FieldDescription, FieldPrice}

// FieldError ties a validation failure to the offending input
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", fe.Field, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// ValidationErrors holds at most one error per field
type ValidationErrors map[Field]*FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, field := range fieldOrder {
		if fe, ok := ve[field]; ok {
			parts = append(parts, fe.Error())
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, field := range fieldOrder {
		if fe, ok := ve[field]; ok {
			errs = append(errs, fe)
		}
	}
	return errs
}

// Messages returns the user-facing text per field
func (ve ValidationErrors) Messages() map[Field]string {
	out := make(map[Field]string, len(ve))
	for field, fe := range ve {
		out[field] = fe.Err.Error()
	}
	return out
}

// DishForm is the raw text collected by the add-dish screen
type DishForm struct {
	Name        string
	Description string
	Price       string
}

var simpleDecimal = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParsePrice accepts plain decimal text such as "12", "12.50" or ".5"
// and rejects anything that is not strictly positive.
func ParsePrice(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	if !simpleDecimal.MatchString(text) {
		return decimal.Zero, ErrInvalidPrice
	}

	text = strings.TrimSuffix(text, ".")
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if !value.IsPositive() {
		return decimal.Zero, ErrInvalidPrice
	}
	return value, nil
}

// Validate checks the form and returns the parsed price on success.
// The returned error is nil or a ValidationErrors value.
func (f DishForm) Validate(requireDescription bool) (decimal.Decimal, error) {
	errs := make(ValidationErrors)

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = &FieldError{Field: FieldName, Value: f.Name, Err: ErrMissingName}
	}
	if requireDescription && strings.TrimSpace(f.Description) == "" {
		errs[FieldDescription] = &FieldError{Field: FieldDescription, Value: f.Description, Err: ErrMissingDescription}
	}

	price, err := ParsePrice(f.Price)
	if err != nil {
		errs[FieldPrice] = &FieldError{Field: FieldPrice, Value: f.Price, Err: ErrInvalidPrice}
	}

	if len(errs) > 0 {
		return decimal.Zero, errs
	}
	return price, nil
}
