package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/datesel"
)

// DateSelector edits a "DD.MM.YYYY" value with a day list, a month list and
// a four-digit year field. Every user edit reports the new value through
// OnChanged, even while the date is still incomplete.
type DateSelector struct {
	widget.BaseWidget

	OnChanged func(value string)

	model *datesel.Model

	day    *widget.Select
	month  *widget.Select
	year   *NumericalEntry
	helper *widget.Label

	label      string
	helperText string
	inError    bool
	disabled   bool

	// updating is set while the widgets are synced from the model, so
	// their OnChanged callbacks do not feed back into it.
	updating bool
}

// NewDateSelector creates a selector showing value. translate resolves the
// month and placeholder keys; a nil translate shows the keys themselves.
func NewDateSelector(value, label string, translate func(key string) string) *DateSelector {
	if translate == nil {
		translate = func(key string) string { return key }
	}

	s := &DateSelector{label: label}
	s.model = datesel.NewModel(value, s.emit)

	s.day = widget.NewSelect(nil, func(string) {
		if s.updating {
			return
		}
		s.model.SelectDay(s.day.SelectedIndex())
		s.sync()
	})
	s.day.PlaceHolder = translate(config.TKeyDataSelectorDay)

	months := datesel.MonthOptions()
	monthLabels := make([]string, len(months))
	for i, m := range months {
		monthLabels[i] = translate(m.LabelKey)
	}
	s.month = widget.NewSelect(monthLabels, func(string) {
		if s.updating {
			return
		}
		s.model.SelectMonth(s.month.SelectedIndex())
		s.sync()
	})
	s.month.PlaceHolder = translate(config.TKeyDataSelectorMonth)

	s.year = NewYearEntry()
	s.year.SetPlaceHolder(translate(config.TKeyDataSelectorYear))
	s.year.OnChanged = func(text string) {
		if s.updating {
			return
		}
		if !s.model.TypeYear(text) {
			slog.Debug(config.MsgYearRejected,
				config.LogKeyComponent, config.CompDateSel,
				config.LogKeyValue, text,
			)
		}
		// Rejected or truncated input is replaced by the held year.
		s.sync()
	}

	s.helper = widget.NewLabel(label)
	s.helper.Wrapping = fyne.TextWrapWord

	s.ExtendBaseWidget(s)
	s.sync()
	return s
}

// CreateRenderer implements fyne.Widget.
func (s *DateSelector) CreateRenderer() fyne.WidgetRenderer {
	fields := container.NewGridWithColumns(config.LayoutColumnsTriple, s.day, s.month, s.year)
	return widget.NewSimpleRenderer(container.NewVBox(fields, s.helper))
}

// SetValue replaces the displayed date without calling OnChanged.
func (s *DateSelector) SetValue(value string) {
	s.model.SetValue(value)
	s.sync()
}

// Value returns the current canonical string.
func (s *DateSelector) Value() string {
	return s.model.Value()
}

// Parts returns the current date parts.
func (s *DateSelector) Parts() datesel.DateParts {
	return s.model.Parts()
}

// SetError shows helperText in place of the label.
func (s *DateSelector) SetError(helperText string) {
	s.inError = true
	s.helperText = helperText
	s.syncHelper()
}

// ClearError restores the label.
func (s *DateSelector) ClearError() {
	s.inError = false
	s.helperText = ""
	s.syncHelper()
}

// Disable prevents editing all three fields.
func (s *DateSelector) Disable() {
	s.disabled = true
	s.day.Disable()
	s.month.Disable()
	s.year.Disable()
}

// Enable re-enables editing.
func (s *DateSelector) Enable() {
	s.disabled = false
	s.day.Enable()
	s.month.Enable()
	s.year.Enable()
}

// Disabled reports whether editing is disabled.
func (s *DateSelector) Disabled() bool {
	return s.disabled
}

func (s *DateSelector) emit(value string) {
	slog.Debug(config.MsgDateChanged,
		config.LogKeyComponent, config.CompDateSel,
		config.LogKeyValue, value,
	)
	if s.OnChanged != nil {
		s.OnChanged(value)
	}
}

// sync pushes the model state into the child widgets.
func (s *DateSelector) sync() {
	s.updating = true
	defer func() { s.updating = false }()

	parts := s.model.Parts()

	opts := s.model.DayOptions()
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	s.day.Options = labels
	s.day.Refresh()

	if i, ok := parts.Day.Index(); ok {
		s.day.SetSelectedIndex(i)
	} else {
		s.day.ClearSelected()
	}
	if i, ok := parts.Month.Index(); ok {
		s.month.SetSelectedIndex(i)
	} else {
		s.month.ClearSelected()
	}
	if s.year.Text != parts.Year {
		s.year.SetText(parts.Year)
	}
	s.syncHelper()
}

func (s *DateSelector) syncHelper() {
	if s.inError {
		s.helper.Importance = widget.DangerImportance
		s.helper.SetText(s.helperText)
		return
	}
	s.helper.Importance = widget.MediumImportance
	s.helper.SetText(s.label)
}
