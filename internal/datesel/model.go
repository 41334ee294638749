package datesel

// Model holds the state of one date selector.
// It is derived from the caller's value and replaced wholly on each edit;
// every user edit emits the new canonical string, even when incomplete.
// A Model is owned by the UI thread and is not safe for concurrent use.
type Model struct {
	parts    DateParts
	onChange func(string)
}

// NewModel creates a model for value. onChange may be nil.
func NewModel(value string, onChange func(string)) *Model {
	return &Model{parts: Parse(value), onChange: onChange}
}

// SetValue re-derives the parts from an external value. It does not emit.
func (m *Model) SetValue(value string) {
	m.parts = Parse(value)
}

// SetOnChange replaces the change callback.
func (m *Model) SetOnChange(fn func(string)) {
	m.onChange = fn
}

// Parts returns the current parts.
func (m *Model) Parts() DateParts {
	return m.parts
}

// Value returns the canonical string of the current parts.
func (m *Model) Value() string {
	return Format(m.parts)
}

// DayOptions returns the day dropdown entries for the current month and year.
func (m *Model) DayOptions() []Option {
	return DayOptions(m.parts)
}

// SelectDay sets the zero-based day and emits.
func (m *Model) SelectDay(day int) {
	m.apply(m.parts.WithDay(At(day)))
}

// SelectMonth sets the zero-based month, re-clamps the day and emits.
// An index outside 0..11 clears the month and still emits; the day is
// kept since an unset month allows 31 days.
func (m *Model) SelectMonth(month int) {
	m.apply(m.parts.WithMonth(At(month)))
}

// TypeYear applies raw year input. Rejected input leaves the model untouched
// and does not emit; the return value reports acceptance.
func (m *Model) TypeYear(raw string) bool {
	next, ok := m.parts.WithYear(raw)
	if !ok {
		return false
	}
	m.apply(next)
	return true
}

func (m *Model) apply(next DateParts) {
	m.parts = next
	if m.onChange != nil {
		m.onChange(Format(next))
	}
}
