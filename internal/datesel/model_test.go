package datesel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-profile/internal/datesel"
)

// recorder collects every value emitted by a Model.
type recorder struct {
	values []string
}

func (r *recorder) onChange(v string) {
	r.values = append(r.values, v)
}

func (r *recorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.values, "expected at least one emitted value")
	return r.values[len(r.values)-1]
}

func TestModel_InitialState(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("", rec.onChange)

	assert.Equal(t, datesel.DateParts{}, m.Parts())
	assert.Len(t, m.DayOptions(), 31)
	assert.Empty(t, rec.values, "construction must not emit")
}

func TestModel_SetValueDoesNotEmit(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("", rec.onChange)

	m.SetValue("05.03.2020")

	assert.Equal(t, "05.03.2020", m.Value())
	assert.Empty(t, rec.values)
}

func TestModel_EmitsPartialDates(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("", rec.onChange)

	m.SelectDay(4)
	assert.Equal(t, "05..", rec.last(t))

	m.SelectMonth(2)
	assert.Equal(t, "05.03.", rec.last(t))

	require.True(t, m.TypeYear("2"))
	assert.Equal(t, "05.03.2", rec.last(t))

	require.True(t, m.TypeYear("2020"))
	assert.Equal(t, "05.03.2020", rec.last(t))

	assert.Len(t, rec.values, 4)
}

// TestModel_MonthChangeClamps covers the 31st moving to February.
func TestModel_MonthChangeClamps(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{"2024", "29.02.2024"},
		{"2023", "28.02.2023"},
		{"2100", "29.02.2100"},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			rec := &recorder{}
			m := datesel.NewModel("31.01."+tt.year, rec.onChange)

			m.SelectMonth(1)

			assert.Equal(t, tt.want, rec.last(t))
			assert.Len(t, m.DayOptions(), m.Parts().DaysInMonth())
		})
	}
}

func TestModel_YearChangeClamps(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("29.02.2024", rec.onChange)

	require.True(t, m.TypeYear("2023"))

	assert.Equal(t, "28.02.2023", rec.last(t))
	assert.Len(t, m.DayOptions(), 28)
}

func TestModel_YearTruncated(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("01.01.", rec.onChange)

	require.True(t, m.TypeYear("12345"))

	assert.Equal(t, "1234", m.Parts().Year)
	assert.Equal(t, "01.01.1234", rec.last(t))
}

func TestModel_YearRejected(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("01.01.1990", rec.onChange)

	assert.False(t, m.TypeYear("19a0"))
	assert.False(t, m.TypeYear("abcdef"))

	assert.Equal(t, "1990", m.Parts().Year)
	assert.Empty(t, rec.values, "rejected input must not emit")
}

// TestModel_DayChangeDoesNotTouchMonth ensures day edits keep other fields.
func TestModel_DayChangeDoesNotTouchMonth(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("10.04.2001", rec.onChange)

	m.SelectDay(0)

	assert.Equal(t, "01.04.2001", rec.last(t))
}

func TestModel_NilCallback(t *testing.T) {
	m := datesel.NewModel("", nil)
	assert.NotPanics(t, func() {
		m.SelectDay(1)
		m.SelectMonth(1)
		m.TypeYear("2000")
	})
	assert.Equal(t, "02.02.2000", m.Value())
}

func TestModel_SetOnChange(t *testing.T) {
	m := datesel.NewModel("", nil)
	rec := &recorder{}
	m.SetOnChange(rec.onChange)

	m.SelectMonth(11)

	assert.Equal(t, []string{".12."}, rec.values)
}

func TestModel_SelectMonthOutOfRange(t *testing.T) {
	rec := &recorder{}
	m := datesel.NewModel("28.02.1234", rec.onChange)

	m.SelectMonth(99)

	assert.Equal(t, []string{"28..1234"}, rec.values)
	assert.False(t, m.Parts().Month.IsSet())
	assert.Len(t, m.DayOptions(), 31)
}
