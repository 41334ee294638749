package datesel

import (
	"strconv"

	"github.com/tartampluch/go-profile/internal/config"
)

// daysInMonth is indexed by zero-based month.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const february = 1

// DaysInMonth returns the day count of a zero-based month.
// February has 29 days whenever the year is divisible by four; century
// years are not special-cased. An unset month allows 31 days.
func DaysInMonth(month Field, year string) int {
	m, ok := month.Index()
	if !ok || m >= len(daysInMonth) {
		return config.DefaultDaysInMonth
	}
	if m == february && isLeap(year) {
		return 29
	}
	return daysInMonth[m]
}

// isLeap applies the divisible-by-four rule. An empty or partial year counts
// as its numeric value, so "" (zero) is a leap year.
func isLeap(year string) bool {
	if year == "" {
		return true
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	return n%4 == 0
}

// Clamp reduces the day to the last valid index for the parts' month and
// year. A day already in range, or unset, is left unchanged.
func Clamp(parts DateParts) DateParts {
	day, ok := parts.Day.Index()
	if !ok {
		return parts
	}
	if maxDay := parts.DaysInMonth() - 1; day > maxDay {
		parts.Day = At(maxDay)
	}
	return parts
}

// WithDay returns a copy with the day replaced. Out-of-range days are clamped.
func (p DateParts) WithDay(day Field) DateParts {
	p.Day = day
	return Clamp(p)
}

// WithMonth returns a copy with the month replaced and the day re-clamped.
func (p DateParts) WithMonth(month Field) DateParts {
	if m, ok := month.Index(); ok && m >= len(daysInMonth) {
		month = Unset
	}
	p.Month = month
	return Clamp(p)
}

// WithYear returns a copy with the year replaced and the day re-clamped.
// The raw input goes through SanitizeYear; ok is false, and p is returned
// unchanged, when it is rejected.
func (p DateParts) WithYear(raw string) (DateParts, bool) {
	year, ok := SanitizeYear(raw)
	if !ok {
		return p, false
	}
	p.Year = year
	return Clamp(p), true
}
