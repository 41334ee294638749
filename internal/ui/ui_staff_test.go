package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/engine"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func names(entries []engine.StaffEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// -----------------------------------------------------------------------------
// Sorting Logic Tests
// -----------------------------------------------------------------------------

// TestStaffSorter_Names verifies case-insensitive, language-aware ordering.
func TestStaffSorter_Names(t *testing.T) {
	cmp := collate.New(language.English, collate.IgnoreCase).CompareString

	data := []engine.StaffEntry{
		{Name: "charlie"},
		{Name: "Émile"},
		{Name: "Bob"},
		{Name: "alice"},
	}

	staffSorter{col: config.ColIDName, asc: true, cmp: cmp}.sort(data)
	assert.Equal(t, []string{"alice", "Bob", "charlie", "Émile"}, names(data),
		"accented names sort with their base letter, not after z")

	staffSorter{col: config.ColIDName, asc: false, cmp: cmp}.sort(data)
	assert.Equal(t, []string{"Émile", "charlie", "Bob", "alice"}, names(data))
}

// TestStaffSorter_Russian checks Cyrillic ordering under the ru collation.
func TestStaffSorter_Russian(t *testing.T) {
	cmp := collate.New(language.Russian, collate.IgnoreCase).CompareString

	data := []engine.StaffEntry{{Name: "Яков"}, {Name: "борис"}, {Name: "Анна"}}
	staffSorter{col: config.ColIDName, asc: true, cmp: cmp}.sort(data)

	assert.Equal(t, []string{"Анна", "борис", "Яков"}, names(data))
}

// TestStaffSorter_BirthDates orders by calendar position; undated profiles last.
func TestStaffSorter_BirthDates(t *testing.T) {
	cmp := collate.New(language.English).CompareString

	data := []engine.StaffEntry{
		{Name: "NoDate"},
		{Name: "December", BirthDate: "01.12.1990"},
		{Name: "MonthOnly", BirthDate: ".03."},
		{Name: "January", BirthDate: "15.01.1985"},
		{Name: "NoYear", BirthDate: "10.01."},
	}

	staffSorter{col: config.ColIDBirthDate, asc: true, cmp: cmp}.sort(data)
	assert.Equal(t, []string{"NoYear", "January", "December", "MonthOnly", "NoDate"}, names(data))
}

// TestStaffSorter_Completeness sorts by percentage, then by name.
func TestStaffSorter_Completeness(t *testing.T) {
	cmp := collate.New(language.English).CompareString

	data := []engine.StaffEntry{
		{Name: "Full", Email: "a@b.c", Phone: "1", Title: "CTO", BirthDate: "01.01.1990"},
		{Name: "B"},
		{Name: "A"},
	}

	staffSorter{col: config.ColIDCompleteness, asc: true, cmp: cmp}.sort(data)
	assert.Equal(t, []string{"A", "B", "Full"}, names(data))
}

// -----------------------------------------------------------------------------
// Window Tests
// -----------------------------------------------------------------------------

// TestStaffWindow_Singleton verifies that a second open reuses the window.
func TestStaffWindow_Singleton(t *testing.T) {
	app, _, _ := setupTestApp(t)

	app.ShowStaffWindow()
	first := app.staffWindow
	require.NotNil(t, first)
	require.NotNil(t, app.onStaffChanged, "open window listens for staff changes")

	app.ShowStaffWindow()
	assert.Same(t, first, app.staffWindow)

	first.Close()
	assert.Nil(t, app.staffWindow)
	assert.Nil(t, app.onStaffChanged)
}

// TestStaffWindow_Title uses the localized title.
func TestStaffWindow_Title(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	app.ShowStaffWindow()
	t.Cleanup(func() { app.staffWindow.Close() })

	assert.Equal(t, "Staff", app.staffWindow.Title())
}
