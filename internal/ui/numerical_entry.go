package ui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-profile/internal/config"
)

// NumericalEntry is an Entry that only accepts typed digits.
type NumericalEntry struct {
	widget.Entry

	// MaxLength caps typed input; zero means unlimited.
	// Pasted text bypasses TypedRune and must be checked by the owner.
	MaxLength int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewYearEntry creates the year field of a DateSelector.
func NewYearEntry() *NumericalEntry {
	entry := NewNumericalEntry()
	entry.MaxLength = config.MaxYearLength
	return entry
}

// TypedRune drops anything but 0-9 and input past MaxLength.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxLength > 0 && utf8.RuneCountInString(e.Text) >= e.MaxLength && e.SelectedText() == "" {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
