package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/teambition/rrule-go"
)

// yearly is the recurrence of every birthday event.
var yearly = rrule.ROption{Freq: rrule.YEARLY}

// FeedBuilder renders the staff birthdays as an iCalendar feed.
type FeedBuilder struct {
	Clock Clock

	// FormatSummary lets the UI inject the localized event title.
	FormatSummary func(name string) string
}

// Build returns the ICS document and the number of birthdays falling today.
// Each profile whose birth date has a day and a month becomes one all-day
// event recurring yearly. Profiles without a year start in the reference
// leap year so that 29 February stays representable.
func (fb *FeedBuilder) Build(entries []StaffEntry) ([]byte, int, error) {
	now := fb.Clock.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.Set(rawProp(config.PropXWRCalName, config.ICalCalName))
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today := 0
	for _, e := range entries {
		start, ok := birthdayStart(e)
		if !ok {
			continue
		}
		if occursOn(start, dayStart) {
			today++
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.UID, config.ICalDomain))
		event.Props.Set(dtStamp)
		event.Props.SetText(config.PropSummary, fb.summary(e.DisplayName()))

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(start)
		event.Props.Set(dtStart)

		event.Props.Set(rawProp(config.PropRRule, yearly.RRuleString()))

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgFeedBuilt,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyEvents, len(cal.Children)),
			slog.Int(config.LogKeyToday, today),
		),
	)
	return buf.Bytes(), today, nil
}

// rawProp builds a property without the VALUE=TEXT parameter that
// SetText adds to non-standard names.
func rawProp(name, value string) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = value
	return p
}

func (fb *FeedBuilder) summary(name string) string {
	if fb.FormatSummary != nil {
		if s := fb.FormatSummary(name); s != "" {
			return s
		}
	}
	return fmt.Sprintf(config.FallbackSummary, name)
}

// occursOn reports whether the yearly series starting at start has an
// occurrence on day. A 29 February series skips common years.
func occursOn(start, day time.Time) bool {
	opt := yearly
	opt.Dtstart = start
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return false
	}
	return rule.After(day, true).Equal(day)
}

// birthdayStart returns the first occurrence of a profile's birthday.
// A partial year (fewer than four digits) is treated as unknown.
func birthdayStart(e StaffEntry) (time.Time, bool) {
	parts := e.Parts()
	day, okDay := parts.Day.Index()
	month, okMonth := parts.Month.Index()
	if !okDay || !okMonth {
		return time.Time{}, false
	}

	year := config.DefaultLeapYear
	if len(parts.Year) == config.MaxYearLength {
		if y, err := strconv.Atoi(parts.Year); err == nil {
			year = y
		}
	}

	start := time.Date(year, time.Month(month+1), day+1, 0, 0, 0, 0, time.UTC)
	// The selector's divisible-by-four rule accepts 29.02.1900; the calendar
	// does not, so such dates fall back to the reference year.
	if start.Day() != day+1 {
		start = time.Date(config.DefaultLeapYear, time.Month(month+1), day+1, 0, 0, 0, 0, time.UTC)
	}
	return start, true
}
