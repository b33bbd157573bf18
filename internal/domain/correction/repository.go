package correction

import "context"

// CorrectionRepository defines data access for edit requests.
type CorrectionRepository interface {
	// GetByID retrieves an edit request by its identifier.
	GetByID(ctx context.Context, id string) (EditRequest, error)

	// HasPendingForAttendance reports whether a pending edit request
	// already exists for the given attendance record. Enforces the
	// single-pending-correction invariant.
	HasPendingForAttendance(ctx context.Context, attendanceID string) (bool, error)

	// Create inserts a new pending edit request.
	Create(ctx context.Context, e EditRequest) (EditRequest, error)

	// UpdateStatus transitions an edit request's approval status.
	UpdateStatus(ctx context.Context, id string, status ApprovalStatus) error

	// GetByUser retrieves a participant's edit requests, newest first.
	GetByUser(ctx context.Context, userID string) ([]EditRequest, error)

	// List retrieves every edit request, newest first (admin).
	List(ctx context.Context) ([]EditRequest, error)
}
