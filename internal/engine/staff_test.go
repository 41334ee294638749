package engine_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/engine"
)

func TestStaffEntry_Completeness(t *testing.T) {
	tests := []struct {
		name  string
		entry engine.StaffEntry
		want  int
	}{
		{"Empty", engine.StaffEntry{}, 0},
		{"Name Only", engine.StaffEntry{Name: "Anna"}, 20},
		{"Partial Date Not Counted", engine.StaffEntry{Name: "Anna", BirthDate: "05.03."}, 20},
		{"Blank Strings Not Counted", engine.StaffEntry{Name: "  ", Email: "\t"}, 0},
		{"Full", engine.StaffEntry{Name: "A", BirthDate: "05.03.1990", Email: "a@b", Phone: "1", Title: "CEO"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Completeness())
		})
	}
}

func TestAverageCompleteness(t *testing.T) {
	assert.Zero(t, engine.AverageCompleteness(nil))
	assert.Equal(t, 60, engine.AverageCompleteness([]engine.StaffEntry{
		{Name: "A"},
		{Name: "A", BirthDate: "05.03.1990", Email: "a@b", Phone: "1", Title: "CEO"},
	}))
}

func TestNewStaffEntry(t *testing.T) {
	a := engine.NewStaffEntry("New")
	b := engine.NewStaffEntry("New")

	_, err := uuid.Parse(a.UID)
	require.NoError(t, err)
	assert.NotEqual(t, a.UID, b.UID)
	assert.Equal(t, "New", a.Name)
	assert.Empty(t, a.BirthDate)
}

func TestStaffEntry_DisplayName(t *testing.T) {
	assert.Equal(t, "Anna", engine.StaffEntry{Name: " Anna "}.DisplayName())
	assert.Equal(t, config.FallbackName, engine.StaffEntry{}.DisplayName())
}

func TestApplyOverrides(t *testing.T) {
	imported := []engine.StaffEntry{
		{UID: "1", Name: "One"},
		{UID: "2", Name: "Two"},
	}
	overrides := map[string]engine.StaffEntry{
		"2": {UID: "2", Name: "Two (edited)", BirthDate: "01.01.2000"},
		"b": {UID: "b", Name: "Draft B"},
		"a": {UID: "a", Name: "Draft A"},
	}

	got := engine.ApplyOverrides(imported, overrides)

	require.Len(t, got, 4)
	assert.Equal(t, "One", got[0].Name)
	assert.Equal(t, "Two (edited)", got[1].Name)
	assert.Equal(t, "Draft A", got[2].Name, "drafts are appended in UID order")
	assert.Equal(t, "Draft B", got[3].Name)
	assert.Equal(t, "Two", imported[1].Name, "input is not modified")
}
