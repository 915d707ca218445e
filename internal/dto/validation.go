package dto

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/posting_spine/internal/apperrors"
	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/utils/money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in query strings and request bodies.
const DateLayout = "2006-01-02"

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's
// validator. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("decimal4", validateDecimal4)
		}
	})
}

// validateDecimal4 accepts a strictly positive decimal string with at most four fraction digits.
func validateDecimal4(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	if d.Exponent() < -money.Scale && !d.Equal(money.Normalize(d)) {
		return false
	}
	return d.IsPositive()
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. An empty string yields nil.
func ParseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD) or RFC 3339 timestamp", apperrors.ErrValidation, field)
	}
	t = t.UTC()
	return &t, nil
}

// ParseDateRange parses optional from and to dates. A bare to date covers the whole day.
func ParseDateRange(from, to string) (domain.DateRange, error) {
	start, err := ParseDate("from", from)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := ParseDate("to", to)
	if err != nil {
		return domain.DateRange{}, err
	}
	if start != nil && end != nil && start.After(*end) {
		return domain.DateRange{}, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return domain.DateRange{From: start, To: EndOfDay(end)}, nil
}

// EndOfDay moves a bare calendar date to its last instant so inclusive upper
// bounds cover the whole day.
func EndOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		end := t.Add(24*time.Hour - time.Nanosecond)
		return &end
	}
	return t
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
