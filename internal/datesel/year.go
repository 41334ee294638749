package datesel

import (
	"regexp"

	"github.com/tartampluch/go-profile/internal/config"
)

var yearPattern = regexp.MustCompile(`^\d{0,4}$`)

// SanitizeYear validates raw year input. Input longer than four characters
// is cut to its first four before matching; anything but ASCII digits is
// rejected.
func SanitizeYear(raw string) (string, bool) {
	if len(raw) > config.MaxYearLength {
		raw = raw[:config.MaxYearLength]
	}
	if !yearPattern.MatchString(raw) {
		return "", false
	}
	return raw, true
}
