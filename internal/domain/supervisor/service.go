package supervisor

import "context"

// SupervisorService defines supervisor roster operations (admin).
type SupervisorService interface {
	// List retrieves every supervisor.
	List(ctx context.Context) ([]Supervisor, error)

	// Save inserts or updates a supervisor.
	Save(ctx context.Context, req SaveSupervisorRequest) (Supervisor, error)

	// Delete removes a supervisor.
	Delete(ctx context.Context, id string) error
}
