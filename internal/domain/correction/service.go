package correction

import "context"

// CorrectionService defines the correction workflow.
type CorrectionService interface {
	// Submit files a new correction proposal. Blocked while a pending one
	// exists for the same attendance record.
	Submit(ctx context.Context, req SubmitCorrectionRequest) (CorrectionResponse, error)

	// Decide approves (overwriting the referenced attendance record) or
	// rejects a pending correction.
	Decide(ctx context.Context, req DecideCorrectionRequest) (CorrectionResponse, error)

	// GetMyCorrections lists the authenticated participant's requests.
	GetMyCorrections(ctx context.Context, userID string) ([]CorrectionResponse, error)

	// List lists every correction request (admin).
	List(ctx context.Context) ([]CorrectionResponse, error)
}
