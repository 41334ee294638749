package datesel

import (
	"strconv"

	"github.com/tartampluch/go-profile/internal/config"
)

// Option is one entry of a selector dropdown.
// LabelKey is set instead of Label when the text must be translated.
type Option struct {
	Value    int
	Label    string
	LabelKey string
}

// DayOptions lists the selectable days, labelled from "1".
func DayOptions(parts DateParts) []Option {
	n := parts.DaysInMonth()
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = Option{Value: i, Label: strconv.Itoa(i + 1)}
	}
	return opts
}

// MonthOptions lists the twelve months with their translation keys.
func MonthOptions() []Option {
	opts := make([]Option, len(config.MonthKeys))
	for i, key := range config.MonthKeys {
		opts[i] = Option{Value: i, LabelKey: key}
	}
	return opts
}
