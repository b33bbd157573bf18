package user

import "context"

// UserRepository defines data access for participant and admin accounts.
type UserRepository interface {
	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Create inserts a new user. A duplicate email surfaces ErrEmailExists.
	Create(ctx context.Context, u User) (User, error)

	// Update rewrites a user's profile fields.
	Update(ctx context.Context, u User) error

	// Delete removes a user.
	Delete(ctx context.Context, id string) error

	// List retrieves every user.
	List(ctx context.Context) ([]User, error)

	// ListActiveParticipants retrieves participants whose accounts are
	// active; the reconciliation sweep iterates these.
	ListActiveParticipants(ctx context.Context) ([]User, error)
}
