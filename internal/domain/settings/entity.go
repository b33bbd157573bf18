package settings

import (
	"strconv"
	"strings"
	"time"
)

// Settings is the organization-wide schedule configuration. It is stored as
// a single row and fetched once per operation; callers thread the value they
// fetched through every decision so one request never mixes two versions.
// Two concurrent requests may still observe different versions when an admin
// saves mid-flight; that window is accepted.
type Settings struct {
	ClockInStart    string   `json:"clock_in_start"`  // HH:MM
	ClockInEnd      string   `json:"clock_in_end"`    // HH:MM, inclusive on-time boundary
	ClockOutStart   string   `json:"clock_out_start"` // HH:MM
	ClockOutEnd     string   `json:"clock_out_end"`   // HH:MM
	OperationalDays []int    `json:"operational_days"` // time.Weekday numbers, 0=Sunday
	Holidays        []string `json:"holidays"`         // exact dates, YYYY-MM-DD
}

// Default returns the schedule used before an admin ever saves one.
func Default() Settings {
	return Settings{
		ClockInStart:    "08:00",
		ClockInEnd:      "08:30",
		ClockOutStart:   "17:00",
		ClockOutEnd:     "23:59",
		OperationalDays: []int{1, 2, 3, 4, 5},
		Holidays:        []string{},
	}
}

// IsOperationalDay reports whether the date's weekday is configured as a
// working day.
func (s Settings) IsOperationalDay(date time.Time) bool {
	weekday := int(date.Weekday())
	for _, d := range s.OperationalDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the exact calendar date is configured as a
// holiday. Holidays win over the weekday check wherever both apply.
func (s Settings) IsHoliday(date string) bool {
	for _, h := range s.Holidays {
		if h == date {
			return true
		}
	}
	return false
}

// MinutesOfDay parses an "HH:MM" string into minutes since midnight.
// Schedule boundaries are compared as plain wall-clock minutes, never as
// instants, so a day's schedule carries no timezone ambiguity.
func MinutesOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
