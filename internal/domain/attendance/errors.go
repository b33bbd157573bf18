package attendance

import "errors"

// Attendance domain errors. The gating errors are routine outcomes with a
// specific human-readable reason, not failures.
var (
	// Clock-in gate
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrTooEarlyToClockIn = errors.New("the clock-in window has not opened yet")

	// Clock-out gate
	ErrNotClockedIn         = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut    = errors.New("you have already clocked out")
	ErrOutsideClockOutHours = errors.New("clock-out is only allowed during the configured clock-out window")

	// Shared submission gate
	ErrHolidayToday        = errors.New("today is a company holiday")
	ErrNotOperationalDay   = errors.New("today is not an operational day")
	ErrPermitExistsToday   = errors.New("a leave or sick permit already covers today")
	ErrMarkedAbsentToday   = errors.New("today has already been marked absent by the system")

	// General
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
