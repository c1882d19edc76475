// Package money wraps shopspring/decimal with rupee semantics: whole-rupee
// rounding and Indian-system (lakh/crore) formatting.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
)

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// FromDecimal creates a Money from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromInt creates a Money from an integer rupee amount
func FromInt(v int64) Money {
	return Money{decimal.NewFromInt(v)}
}

// FromString creates a Money from a string
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to the whole rupee
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the amount with Indian digit grouping, e.g. ₹12,34,567
func (m Money) String() string {
	return Format(m.Decimal)
}

// Format renders a decimal as rupees with Indian digit grouping. The amount
// is rounded to the whole rupee first; paise never appear in reports.
func Format(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	out := "₹" + groupIndian(s)
	if neg {
		out = "-" + out
	}
	return out
}

// Compact renders a decimal in lakh/crore units, e.g. ₹1.5Cr, ₹23.4L.
func Compact(d decimal.Decimal) string {
	sign := ""
	abs := d.Abs()
	if d.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).Round(2).String() + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).Round(2).String() + "L"
	default:
		return Format(d)
	}
}

// groupIndian inserts separators in the Indian system: the last three digits
// form one group, every two digits before that form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
