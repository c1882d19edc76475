package dateutil

import (
	"time"
)

// Age calculates the completed age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// RetirementDate returns the superannuation date for a date of birth: the
// last day of the month in which the employee attains retirementAge.
// Government service rules retire employees at month-end, not on the birthday.
func RetirementDate(birthDate time.Time, retirementAge int) time.Time {
	year := birthDate.Year() + retirementAge
	month := birthDate.Month()
	return time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthsBetween calculates the whole months between two dates, ignoring the
// day of month
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return -months
	}
	return months
}

// SixMonthPeriods counts half-year periods between two dates, inclusive of
// the starting period. Used by the guaranteed-benefit lumpsum formula.
func SixMonthPeriods(from, to time.Time) int {
	return MonthsBetween(from, to)/6 + 1
}

// YearsOfService calculates the years of service at a given date
func YearsOfService(joinDate, atDate time.Time) float64 {
	serviceDuration := atDate.Sub(joinDate)
	return serviceDuration.Hours() / 24 / 365.25
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 0, 0, 0, 0, date.Location())
}
