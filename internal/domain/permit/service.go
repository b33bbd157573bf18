package permit

import "context"

// PermitService defines the permit workflow.
type PermitService interface {
	// Submit files a new pending permit with optional evidence.
	Submit(ctx context.Context, req SubmitPermitRequest) (PermitResponse, error)

	// Decide approves or rejects a pending permit and materializes the
	// attendance record for that day. Replaying a decision is idempotent.
	Decide(ctx context.Context, req DecidePermitRequest) (PermitResponse, error)

	// GetMyPermits lists the authenticated participant's permits.
	GetMyPermits(ctx context.Context, userID string) ([]PermitResponse, error)

	// List lists every permit (admin).
	List(ctx context.Context) ([]PermitResponse, error)
}
