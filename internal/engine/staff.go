package engine

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/datesel"
)

// StaffEntry is one employee profile as shown and edited in the UI.
type StaffEntry struct {
	// UID identifies the profile across imports. Imported cards use their
	// vCard UID or a deterministic hash; drafts get a random UUID.
	UID string

	Name string

	// BirthDate is the canonical "DD.MM.YYYY" string, possibly partial.
	BirthDate string

	Email string
	Phone string
	Title string
}

// completenessFields is the number of profile fields counted by Completeness.
const completenessFields = 5

// NewStaffEntry creates an empty draft profile.
func NewStaffEntry(name string) StaffEntry {
	return StaffEntry{UID: uuid.NewString(), Name: name}
}

// Parts decomposes the birth date.
func (e StaffEntry) Parts() datesel.DateParts {
	return datesel.Parse(e.BirthDate)
}

// DisplayName returns the name or a fallback for nameless cards.
func (e StaffEntry) DisplayName() string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return config.FallbackName
}

// Completeness returns the percentage of filled profile fields.
// A birth date only counts once day, month and year are all present.
func (e StaffEntry) Completeness() int {
	filled := 0
	for _, v := range []string{e.Name, e.Email, e.Phone, e.Title} {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}
	if e.Parts().IsComplete() {
		filled++
	}
	return filled * config.IndicatorMaxValue / completenessFields
}

// AverageCompleteness returns the mean completeness of a directory, 0 when empty.
func AverageCompleteness(entries []StaffEntry) int {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, e := range entries {
		total += e.Completeness()
	}
	return total / len(entries)
}

// ApplyOverrides replaces imported entries by their locally edited version
// and appends local drafts that the source does not know about.
// The input slice is not modified.
func ApplyOverrides(entries []StaffEntry, overrides map[string]StaffEntry) []StaffEntry {
	out := make([]StaffEntry, 0, len(entries)+len(overrides))
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if o, ok := overrides[e.UID]; ok {
			e = o
		}
		seen[e.UID] = true
		out = append(out, e)
	}

	var drafts []StaffEntry
	for uid, o := range overrides {
		if !seen[uid] {
			drafts = append(drafts, o)
		}
	}
	// Map iteration order is random; keep drafts stable for the UI.
	sort.Slice(drafts, func(i, j int) bool { return drafts[i].UID < drafts[j].UID })
	return append(out, drafts...)
}
