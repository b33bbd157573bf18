package attendance

import "context"

// AttendanceRepository defines data access for attendance records. The store
// enforces two uniqueness guarantees the business logic leans on: record id
// is the upsert key, and (user_id, date) carries a unique constraint so two
// racing writers for the same day resolve in the database, not in
// application code.
type AttendanceRepository interface {
	// GetByID retrieves a record by its identifier.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUser retrieves every record for a participant, newest date first.
	GetByUser(ctx context.Context, userID string) ([]Attendance, error)

	// GetByUserAndDate retrieves the record for one participant-day, or nil
	// when the day has no record yet.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)

	// Create inserts a new record. A duplicate (user_id, date) surfaces the
	// store's uniqueness violation.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// Update rewrites a record's mutable fields, keyed by id.
	Update(ctx context.Context, record Attendance) error

	// Upsert inserts the record or, when the (user_id, date) day already has
	// one, replaces its status and note in place. Synthetic writes
	// (reconciliation, permit decisions) go through this so replays are
	// idempotent and a permit verdict can supersede a sweep-written row for
	// the same day.
	Upsert(ctx context.Context, record Attendance) error

	// List retrieves records matching the filter, newest date first.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
