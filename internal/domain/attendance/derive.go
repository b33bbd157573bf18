package attendance

import (
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
)

// ClassifyClockIn decides whether an arriving clock-in is on time or late.
// Arriving exactly at the configured clock-in end still counts as on time;
// every minute past it accrues as lateness. Times are compared as minutes
// since midnight so the comparison is pure local wall-clock.
//
// This function does not reject anything: double clock-ins and
// before-window arrivals are enforced by the submission gate, not here.
func ClassifyClockIn(timeOfDay string, cfg settings.Settings) (Status, int) {
	now, ok := settings.MinutesOfDay(timeOfDay)
	if !ok {
		return StatusPresent, 0
	}
	end, ok := settings.MinutesOfDay(cfg.ClockInEnd)
	if !ok {
		return StatusPresent, 0
	}

	if now <= end {
		return StatusPresent, 0
	}
	return StatusLate, now - end
}

// WithinClockOutWindow reports whether a clock-out submitted at timeOfDay
// falls inside the configured [ClockOutStart, ClockOutEnd] window, both ends
// inclusive.
func WithinClockOutWindow(timeOfDay string, cfg settings.Settings) bool {
	now, ok := settings.MinutesOfDay(timeOfDay)
	if !ok {
		return false
	}
	start, ok := settings.MinutesOfDay(cfg.ClockOutStart)
	if !ok {
		return false
	}
	end, ok := settings.MinutesOfDay(cfg.ClockOutEnd)
	if !ok {
		return false
	}
	return now >= start && now <= end
}

// BeforeClockInWindow reports whether timeOfDay falls before the clock-in
// window opens. The submission gate rejects these so a participant cannot
// bank a presence hours before the workday.
func BeforeClockInWindow(timeOfDay string, cfg settings.Settings) bool {
	now, ok := settings.MinutesOfDay(timeOfDay)
	if !ok {
		return false
	}
	start, ok := settings.MinutesOfDay(cfg.ClockInStart)
	if !ok {
		return false
	}
	return now < start
}
