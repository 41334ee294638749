// Package datesel converts between the canonical "DD.MM.YYYY" birth-date
// string and the day/month/year triple edited by the date selector widget.
//
// Day and month are zero-based dropdown indexes that may be unset, the year
// is free text of up to four digits. Every input degrades gracefully: there
// is no error path, only unset fields.
package datesel

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-profile/internal/config"
)

// Field is a zero-based dropdown index that may be unset.
// The zero value is unset.
type Field struct {
	index int
	set   bool
}

// Unset is the empty selection.
var Unset = Field{}

// At returns a Field selecting index i. Negative indexes are unset.
func At(i int) Field {
	if i < 0 {
		return Unset
	}
	return Field{index: i, set: true}
}

// Index returns the selected index and whether one is set.
func (f Field) Index() (int, bool) {
	return f.index, f.set
}

// IsSet reports whether an index is selected.
func (f Field) IsSet() bool {
	return f.set
}

// String renders the one-based, zero-padded display value or "" when unset.
func (f Field) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%02d", f.index+1)
}

// DateParts is the decomposed form of a canonical date string.
// Day, when set, is always lower than DaysInMonth(Month, Year).
type DateParts struct {
	Day   Field
	Month Field
	Year  string
}

// Parse splits a canonical date string into its parts.
// Absent, non-numeric or out-of-range segments become unset (or "" for the
// year); segments past the third are ignored.
func Parse(value string) DateParts {
	var parts DateParts
	if value == "" {
		return parts
	}

	segments := strings.Split(value, config.DateSeparator)

	if n, ok := leadingInt(segment(segments, 0)); ok && n >= 1 {
		parts.Day = At(n - 1)
	}
	if n, ok := leadingInt(segment(segments, 1)); ok && n >= 1 && n <= len(daysInMonth) {
		parts.Month = At(n - 1)
	}
	if year, ok := SanitizeYear(segment(segments, 2)); ok {
		parts.Year = year
	}

	return Clamp(parts)
}

// Format assembles the canonical string. The two separators are always
// present, so a lone year renders as "..2024".
func Format(parts DateParts) string {
	return parts.Day.String() + config.DateSeparator + parts.Month.String() + config.DateSeparator + parts.Year
}

// String implements fmt.Stringer with the canonical representation.
func (p DateParts) String() string {
	return Format(p)
}

// DaysInMonth returns the number of selectable days for the parts' month and year.
func (p DateParts) DaysInMonth() int {
	return DaysInMonth(p.Month, p.Year)
}

// IsComplete reports whether day, month and a four-digit year are all present.
func (p DateParts) IsComplete() bool {
	return p.Day.IsSet() && p.Month.IsSet() && len(p.Year) == config.MaxYearLength
}

func segment(segments []string, i int) string {
	if i >= len(segments) {
		return ""
	}
	return segments[i]
}

// leadingInt reads the run of ASCII digits at the start of s, ignoring
// surrounding blanks. "7x" yields 7; "x7" yields nothing.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		// Anything this long is garbage for a day or month anyway.
		if digits == 9 {
			return 0, false
		}
		n = n*10 + int(r-'0')
		digits++
	}
	return n, digits > 0
}
