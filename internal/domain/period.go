package domain

import (
	"fmt"
	"time"
)

// Half identifies which half of a calendar year a Period covers.
type Half int

const (
	// H1 covers January through June
	H1 Half = iota
	// H2 covers July through December
	H2
)

// Period is a half-year marker on the career timeline. Periods are unique
// and strictly ordered; the progression, rate and salary series are all
// keyed on them.
type Period struct {
	Year int
	Half Half
}

// PeriodOf returns the Period containing a date
func PeriodOf(t time.Time) Period {
	if t.Month() > time.June {
		return Period{Year: t.Year(), Half: H2}
	}
	return Period{Year: t.Year(), Half: H1}
}

// Next returns the following half-year
func (p Period) Next() Period {
	if p.Half == H1 {
		return Period{Year: p.Year, Half: H2}
	}
	return Period{Year: p.Year + 1, Half: H1}
}

// Before reports whether p precedes o on the timeline
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Half < o.Half
}

// After reports whether p follows o on the timeline
func (p Period) After(o Period) bool {
	return o.Before(p)
}

// Float renders the period as year or year+0.5, matching the half-year
// indexing used by the dearness-allowance record tables.
func (p Period) Float() float64 {
	if p.Half == H2 {
		return float64(p.Year) + 0.5
	}
	return float64(p.Year)
}

// StartMonth returns the first month covered by the period
func (p Period) StartMonth() time.Month {
	if p.Half == H2 {
		return time.July
	}
	return time.January
}

// EndMonth returns the last month covered by the period
func (p Period) EndMonth() time.Month {
	if p.Half == H2 {
		return time.December
	}
	return time.June
}

func (p Period) String() string {
	if p.Half == H2 {
		return fmt.Sprintf("%dH2", p.Year)
	}
	return fmt.Sprintf("%dH1", p.Year)
}

// HalvesBetween returns the number of half-year steps from a to b.
// Negative when b precedes a.
func HalvesBetween(a, b Period) int {
	return (b.Year-a.Year)*2 + int(b.Half) - int(a.Half)
}

// Month is a calendar-month key for the salary and contribution series.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing a date
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following calendar month
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Date returns the first day of the month
func (m Month) Date() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Period returns the half-year containing this month
func (m Month) Period() Period {
	if m.Month > time.June {
		return Period{Year: m.Year, Half: H2}
	}
	return Period{Year: m.Year, Half: H1}
}

// Before reports whether m precedes o
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// After reports whether m follows o
func (m Month) After(o Month) bool {
	return o.Before(m)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
