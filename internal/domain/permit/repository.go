package permit

import "context"

// PermitRepository defines data access for permits.
type PermitRepository interface {
	// GetByID retrieves a permit by its identifier.
	GetByID(ctx context.Context, id string) (Permit, error)

	// GetByUser retrieves every permit for a participant, newest date first.
	GetByUser(ctx context.Context, userID string) ([]Permit, error)

	// GetApprovedByUser retrieves only approved permits for a participant.
	// Reconciliation uses this to know which days a permit already covers.
	GetApprovedByUser(ctx context.Context, userID string) ([]Permit, error)

	// GetByUserAndDate retrieves the permit covering one participant-day
	// regardless of approval status, or nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Permit, error)

	// Create inserts a new pending permit. A second permit for the same
	// (user_id, date) surfaces ErrPermitAlreadyExists.
	Create(ctx context.Context, p Permit) (Permit, error)

	// UpdateStatus transitions a permit's approval status.
	UpdateStatus(ctx context.Context, id string, status ApprovalStatus) error

	// List retrieves every permit, newest date first (admin).
	List(ctx context.Context) ([]Permit, error)
}
