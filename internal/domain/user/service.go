package user

import "context"

// ParticipantService defines roster management operations (admin), plus the
// profile read participants use for their own account.
type ParticipantService interface {
	// Get retrieves one account.
	Get(ctx context.Context, id string) (UserResponse, error)

	// Update rewrites an account's profile, supervisor assignment, and
	// activation status.
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes an account.
	Delete(ctx context.Context, id string) error

	// List retrieves every account.
	List(ctx context.Context) ([]UserResponse, error)
}
