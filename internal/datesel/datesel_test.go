package datesel_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-profile/internal/datesel"
)

// dayOf returns the zero-based day or -1 when unset.
func dayOf(p datesel.DateParts) int {
	if d, ok := p.Day.Index(); ok {
		return d
	}
	return -1
}

func monthOf(p datesel.DateParts) int {
	if m, ok := p.Month.Index(); ok {
		return m
	}
	return -1
}

// -----------------------------------------------------------------------------
// Parser
// -----------------------------------------------------------------------------

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantDay   int
		wantMonth int
		wantYear  string
	}{
		{"Empty", "", -1, -1, ""},
		{"Complete", "05.03.2020", 4, 2, "2020"},
		{"Unpadded", "5.3.2020", 4, 2, "2020"},
		{"Year Only", "..2024", -1, -1, "2024"},
		{"Day Only", "17..", 16, -1, ""},
		{"Partial Year", "01.01.19", 0, 0, "19"},
		{"Garbage", "abc", -1, -1, ""},
		{"Non Numeric Segments", "xx.yy.zzzz", -1, -1, ""},
		{"Leading Digits", "7x.2y.2020", 6, 1, "2020"},
		{"Zero Day And Month", "00.00.2020", -1, -1, "2020"},
		{"Month Out Of Range", "10.13.2020", 9, -1, "2020"},
		{"Day Clamped To Month", "31.04.2021", 29, 3, "2021"},
		{"Day Clamped Feb Non Leap", "31.02.2023", 27, 1, "2023"},
		{"Day Clamped Feb Leap", "31.02.2024", 28, 1, "2024"},
		{"Long Year Truncated", "01.01.20201", 0, 0, "2020"},
		{"Invalid Year Dropped", "01.01.20a0", 0, 0, ""},
		{"Extra Segments Ignored", "01.02.2003.04", 0, 1, "2003"},
		{"Surrounding Spaces", " 09 . 11 .1999", 8, 10, "1999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := datesel.Parse(tt.value)
			assert.Equal(t, tt.wantDay, dayOf(p), "day")
			assert.Equal(t, tt.wantMonth, monthOf(p), "month")
			assert.Equal(t, tt.wantYear, p.Year, "year")
		})
	}
}

// TestParse_DaysInMonth checks the documented March example.
func TestParse_DaysInMonth(t *testing.T) {
	p := datesel.Parse("05.03.2020")
	assert.Equal(t, 31, p.DaysInMonth())
}

// TestParse_InvariantHolds verifies that a parsed day is always in range.
func TestParse_InvariantHolds(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for _, year := range []string{"", "2023", "2024", "2100"} {
			value := fmt.Sprintf("31.%02d.%s", month, year)
			p := datesel.Parse(value)
			assert.Less(t, dayOf(p), p.DaysInMonth(), value)
		}
	}
}

// -----------------------------------------------------------------------------
// Formatter
// -----------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		parts datesel.DateParts
		want  string
	}{
		{"All Unset", datesel.DateParts{}, ".."},
		{"Year Only", datesel.DateParts{Year: "2024"}, "..2024"},
		{"First Day", datesel.DateParts{Day: datesel.At(0), Month: datesel.At(0), Year: "1990"}, "01.01.1990"},
		{"Two Digits", datesel.DateParts{Day: datesel.At(30), Month: datesel.At(11), Year: "2000"}, "31.12.2000"},
		{"Month Only", datesel.DateParts{Month: datesel.At(4)}, ".05."},
		{"Partial Year", datesel.DateParts{Day: datesel.At(9), Month: datesel.At(9), Year: "20"}, "10.10.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datesel.Format(tt.parts))
			assert.Equal(t, tt.want, tt.parts.String())
		})
	}
}

// TestRoundTrip verifies Format(Parse(s)) == s for every valid date of a
// leap and a common year.
func TestRoundTrip(t *testing.T) {
	for _, year := range []string{"2023", "2024"} {
		for month := 1; month <= 12; month++ {
			days := datesel.DaysInMonth(datesel.At(month-1), year)
			for day := 1; day <= days; day++ {
				value := fmt.Sprintf("%02d.%02d.%s", day, month, year)
				require.Equal(t, value, datesel.Format(datesel.Parse(value)))
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Range Calculator
// -----------------------------------------------------------------------------

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month datesel.Field
		year  string
		want  int
	}{
		{"Unset Month", datesel.Unset, "2023", 31},
		{"January", datesel.At(0), "2023", 31},
		{"February Leap", datesel.At(1), "2024", 29},
		{"February Common", datesel.At(1), "2023", 28},
		// Divisible-by-four rule: century years stay leap.
		{"February Century", datesel.At(1), "2100", 29},
		{"February Empty Year", datesel.At(1), "", 29},
		{"February Partial Year", datesel.At(1), "19", 28},
		{"April", datesel.At(3), "2024", 30},
		{"December", datesel.At(11), "2024", 31},
		{"Out Of Table", datesel.At(12), "2024", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datesel.DaysInMonth(tt.month, tt.year))
		})
	}
}

// -----------------------------------------------------------------------------
// Clamp Policy
// -----------------------------------------------------------------------------

func TestWithMonth_ClampsDay(t *testing.T) {
	jan31 := datesel.DateParts{Day: datesel.At(30), Month: datesel.At(0), Year: "2024"}

	leap := jan31.WithMonth(datesel.At(1))
	assert.Equal(t, 28, dayOf(leap))
	assert.Equal(t, "29.02.2024", leap.String())

	jan31.Year = "2023"
	common := jan31.WithMonth(datesel.At(1))
	assert.Equal(t, 27, dayOf(common))
	assert.Equal(t, "28.02.2023", common.String())
}

func TestWithMonth_KeepsValidDay(t *testing.T) {
	p := datesel.DateParts{Day: datesel.At(14), Month: datesel.At(0), Year: "2023"}
	assert.Equal(t, 14, dayOf(p.WithMonth(datesel.At(1))))
}

func TestWithMonth_UnsetDayStaysUnset(t *testing.T) {
	p := datesel.DateParts{Month: datesel.At(0)}.WithMonth(datesel.At(1))
	assert.False(t, p.Day.IsSet())
	assert.Equal(t, ".02.", p.String())
}

func TestWithYear_ReclampsFebruary(t *testing.T) {
	feb29 := datesel.DateParts{Day: datesel.At(28), Month: datesel.At(1), Year: "2024"}

	next, ok := feb29.WithYear("2023")
	require.True(t, ok)
	assert.Equal(t, "28.02.2023", next.String())

	// The original value is untouched.
	assert.Equal(t, "29.02.2024", feb29.String())
}

func TestWithDay_ClampsOutOfRange(t *testing.T) {
	p := datesel.DateParts{Month: datesel.At(3), Year: "2024"}.WithDay(datesel.At(30))
	assert.Equal(t, "30.04.2024", p.String())
}

// -----------------------------------------------------------------------------
// Year Input Validation
// -----------------------------------------------------------------------------

func TestSanitizeYear(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"", "", true},
		{"1", "1", true},
		{"2024", "2024", true},
		{"12345", "1234", true},
		{"20a4", "", false},
		{"12a45", "", false},
		{"-202", "", false},
		{" 202", "", false},
		{"١٢٣٤", "", false}, // non-ASCII digits
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := datesel.SanitizeYear(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 4)
		})
	}
}

func TestWithYear_Rejected(t *testing.T) {
	p := datesel.Parse("10.10.2010")
	next, ok := p.WithYear("20x0")
	assert.False(t, ok)
	assert.Equal(t, p, next)
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

func TestDayOptions(t *testing.T) {
	opts := datesel.DayOptions(datesel.Parse(""))
	require.Len(t, opts, 31)
	assert.Equal(t, datesel.Option{Value: 0, Label: "1"}, opts[0])
	assert.Equal(t, datesel.Option{Value: 30, Label: "31"}, opts[30])

	assert.Len(t, datesel.DayOptions(datesel.Parse(".02.2023")), 28)
	assert.Len(t, datesel.DayOptions(datesel.Parse(".02.2024")), 29)
	assert.Len(t, datesel.DayOptions(datesel.Parse(".11.")), 30)
}

func TestMonthOptions(t *testing.T) {
	opts := datesel.MonthOptions()
	require.Len(t, opts, 12)
	assert.Equal(t, "january_genitive", opts[0].LabelKey)
	assert.Equal(t, "december_genitive", opts[11].LabelKey)
	for i, o := range opts {
		assert.Equal(t, i, o.Value)
		assert.Empty(t, o.Label)
	}
}

func TestIsComplete(t *testing.T) {
	assert.True(t, datesel.Parse("01.01.2000").IsComplete())
	assert.False(t, datesel.Parse("01.01.200").IsComplete())
	assert.False(t, datesel.Parse(".01.2000").IsComplete())
	assert.False(t, datesel.Parse("01..2000").IsComplete())
}

func TestField(t *testing.T) {
	assert.False(t, datesel.At(-1).IsSet())
	assert.Equal(t, datesel.Unset, datesel.At(-5))
	assert.Equal(t, "", datesel.Unset.String())
	assert.Equal(t, "09", datesel.At(8).String())
}
