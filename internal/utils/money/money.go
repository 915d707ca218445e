// Package money implements fixed-scale monetary arithmetic. Every amount is rounded
// half-up to four fraction digits before it takes part in an operation, and every
// comparison is done on the formatted four-digit representation.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fraction digits kept for all monetary amounts.
const Scale = 4

// Zero is the formatted zero amount.
var Zero = Format(decimal.Zero)

// Normalize rounds d to Scale fraction digits.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Parse reads a decimal string and normalizes it to Scale.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Normalize(d), nil
}

// Format renders d with exactly Scale fraction digits.
func Format(d decimal.Decimal) string {
	return Normalize(d).StringFixed(Scale)
}

// Add adds two decimal strings and returns the formatted sum.
func Add(a, b string) (string, error) {
	x, err := Parse(a)
	if err != nil {
		return "", err
	}
	y, err := Parse(b)
	if err != nil {
		return "", err
	}
	return Format(x.Add(y)), nil
}

// Sub subtracts b from a and returns the formatted difference.
func Sub(a, b string) (string, error) {
	x, err := Parse(a)
	if err != nil {
		return "", err
	}
	y, err := Parse(b)
	if err != nil {
		return "", err
	}
	return Format(x.Sub(y)), nil
}

// Sum adds normalized values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(Normalize(v))
	}
	return Normalize(total)
}

// Equal compares two amounts by their formatted representation.
func Equal(a, b decimal.Decimal) bool {
	return Format(a) == Format(b)
}

// IsPositive reports whether d is greater than zero at Scale.
func IsPositive(d decimal.Decimal) bool {
	return Normalize(d).IsPositive()
}

// WithinTolerance reports whether a and b differ by no more than tolerance.
// Only aggregate totals that may carry rounding slack are compared this way.
func WithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return Normalize(a.Sub(b)).Abs().LessThanOrEqual(Normalize(tolerance))
}
