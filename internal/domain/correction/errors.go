package correction

import "errors"

var (
	ErrCorrectionNotFound         = errors.New("correction request not found")
	ErrPendingCorrectionExists    = errors.New("a correction for this record is still awaiting admin review")
	ErrCorrectionAlreadyProcessed = errors.New("correction has already been approved or rejected")
	ErrInvalidDecision            = errors.New("decision must be approve or reject")
)
