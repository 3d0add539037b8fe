/*
calendar.go - Per-currency working-day calendars

PURPOSE:
  Answers "is this weekday a valid settlement day for this currency?".
  Most currencies settle Monday-Friday; AED and SAR settle Sunday-Thursday.

DESIGN:
  The currency table is configuration data, not logic. The built-in
  reference table can be replaced wholesale from a JSON file without
  touching the date-correction algorithm (see instruction.go).

  An unknown currency silently falls back to the default entry. This is
  deliberate: unknown currencies are not a failure mode, they just settle
  on the default calendar.

SEE ALSO:
  - instruction.go: CorrectSettlementDate uses WorkingDays
  - config/config.go: Loads calendar overrides from CALENDARS
*/
package settlement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// =============================================================================
// WEEKDAY SET
// =============================================================================

// WeekdaySet is a set of weekdays, one bit per time.Weekday (Sunday=0).
type WeekdaySet uint8

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func (s WeekdaySet) Contains(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }
func (s WeekdaySet) IsEmpty() bool                { return s == 0 }

// Weekdays returns the members in Sunday-first order, for serialization.
func (s WeekdaySet) Weekdays() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// =============================================================================
// CALENDAR - currency code -> working-day set, with a default entry
// =============================================================================

// DefaultCalendarKey is the table key holding the fallback working-day set.
const DefaultCalendarKey = "_default"

// Calendar resolves a currency code to its working-day set.
type Calendar struct {
	entries     map[string]WeekdaySet
	defaultDays WeekdaySet
}

// NewCalendar returns the reference configuration: Monday-Friday by default,
// Sunday-Thursday for AED and SAR.
func NewCalendar() *Calendar {
	return &Calendar{
		entries: map[string]WeekdaySet{
			"AED": NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday),
			"SAR": NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday),
		},
		defaultDays: NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
	}
}

// WorkingDays returns the working-day set for a currency. Unknown currencies
// use the default entry.
func (c *Calendar) WorkingDays(currency string) WeekdaySet {
	if days, ok := c.entries[currency]; ok {
		return days
	}
	return c.defaultDays
}

// IsWorkingDay reports whether weekday is a valid settlement day for currency.
func (c *Calendar) IsWorkingDay(currency string, weekday time.Weekday) bool {
	return c.WorkingDays(currency).Contains(weekday)
}

// Currencies returns the currency codes with explicit entries.
func (c *Calendar) Currencies() []string {
	codes := make([]string, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	return codes
}

// DefaultDays returns the fallback working-day set.
func (c *Calendar) DefaultDays() WeekdaySet { return c.defaultDays }

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// ParseCalendar reads a calendar table from JSON:
//
//	{"_default": ["Mon","Tue","Wed","Thu","Fri"],
//	 "AED": ["Sun","Mon","Tue","Wed","Thu"]}
//
// Weekday names are matched case-insensitively against short or long English
// names. A "_default" entry replaces the built-in fallback; other entries
// replace the per-currency table entirely.
func ParseCalendar(r io.Reader) (*Calendar, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode calendar config: %w", err)
	}

	cal := NewCalendar()
	entries := make(map[string]WeekdaySet, len(raw))
	for currency, names := range raw {
		var set WeekdaySet
		for _, name := range names {
			d, err := parseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("calendar entry %q: %w", currency, err)
			}
			set |= 1 << uint(d)
		}
		if currency == DefaultCalendarKey {
			cal.defaultDays = set
			continue
		}
		entries[currency] = set
	}
	if len(entries) > 0 {
		cal.entries = entries
	}
	return cal, nil
}

// LoadCalendarFile parses a calendar table from a JSON file.
func LoadCalendarFile(path string) (*Calendar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calendar config: %w", err)
	}
	defer f.Close()
	return ParseCalendar(f)
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := d.String()
		if strings.EqualFold(name, full) || strings.EqualFold(name, full[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
