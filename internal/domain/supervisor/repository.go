package supervisor

import "context"

// SupervisorRepository defines data access for supervisors.
type SupervisorRepository interface {
	// List retrieves every supervisor.
	List(ctx context.Context) ([]Supervisor, error)

	// Upsert inserts the supervisor or updates name and division when the
	// id already exists.
	Upsert(ctx context.Context, s Supervisor) error

	// Delete removes a supervisor.
	Delete(ctx context.Context, id string) error
}
