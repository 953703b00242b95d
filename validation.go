package partnership

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/etnz/partnership/date"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError reports an input that cannot become a ledger entry.
// The ledger is left unchanged when it is returned.
type ValidationError struct {
	Field  string // json name of the offending field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports a document or snapshot that cannot be restored.
// The ledger is left unchanged when it is returned.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format: %s: %v", e.Reason, e.Err)
	}
	return "invalid format: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsFormat reports whether err is, or wraps, a *FormatError.
func IsFormat(err error) bool {
	var f *FormatError
	return errors.As(err, &f)
}

// validate checks the presence of required input fields, declared with
// `validate:"required"` tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// report fields with their json name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// checkRequired runs the struct validation and turns the first failure into a ValidationError.
func checkRequired(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &ValidationError{Field: fe.Field(), Reason: "is required"}
	}
	return &ValidationError{Field: "input", Reason: err.Error()}
}

// parseQuantity parses a required positive integer.
func parseQuantity(field, s string) (Quantity, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not an integer", s)}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%d is not positive", n)}
	}
	return Quantity(n), nil
}

// parseAmount parses a required non-negative decimal.
func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Reason: fmt.Sprintf("%s is negative", d)}
	}
	return d, nil
}

// parseOptionalAmount parses an optional non-negative decimal.
// Blank or unparsable text counts as 0.
func parseOptionalAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, nil
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Reason: fmt.Sprintf("%s is negative", d)}
	}
	return d, nil
}

// parseDate parses a required date.
func parseDate(field, s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, &ValidationError{Field: field, Reason: err.Error()}
	}
	return d, nil
}
