package attendance

import "context"

// AttendanceService defines the interactive attendance operations.
type AttendanceService interface {
	// ClockIn gates and records a participant's daily clock-in. The gate
	// rejects holidays, non-operational days, permit-covered days, days the
	// system already marked absent, double clock-ins, and arrivals before
	// the clock-in window opens. An accepted clock-in is classified on-time
	// or late against the schedule in force right now.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record when the current time falls
	// inside the clock-out window.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetMyAttendance lists the authenticated participant's records.
	GetMyAttendance(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// List lists records across participants (admin).
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}

// SyncService is the reconciliation process: it walks each participant's
// enrollment period and fills every uncovered day with its derived status.
// Safe to invoke from any trigger, any number of times.
type SyncService interface {
	// SyncUser reconciles a single participant. Best-effort per date;
	// returns an error only when reconciliation could not start at all.
	SyncUser(ctx context.Context, userID string) error

	// SyncAll reconciles every active participant.
	SyncAll(ctx context.Context) error
}
